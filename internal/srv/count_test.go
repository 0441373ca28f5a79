package srv

import (
	"testing"

	"github.com/jypelle/ledclock/internal/segment"
	"github.com/jypelle/ledclock/internal/srv/device"
)

func TestCountInterrupted(t *testing.T) {
	sim := device.NewSimulatedDisplay()
	app := &ServerApp{virtualDisplay: sim}

	askStop := make(chan struct{})
	close(askStop)
	app.Count(askStop)

	if got, want := sim.Bitmap(), segment.FromNumber(0, 0); got != want {
		t.Errorf("display = %v, want %v", got, want)
	}
}
