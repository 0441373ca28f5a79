package device

import (
	"github.com/jypelle/ledclock/internal/segment"
	"github.com/jypelle/ledclock/internal/srv/config"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// VirtualDisplay renders full bitmaps. A write replaces whatever was shown
// and takes effect on the next refresh cycle; it never waits for the
// hardware.
type VirtualDisplay interface {
	Start()
	Stop()
	WriteChars(chars [segment.CellCount]rune)
	WriteBitmap(bitmap segment.Bitmap)
}

// NewVirtualDisplay returns the display driver selected by param.
func NewVirtualDisplay(param config.DisplayParam) VirtualDisplay {
	switch param.Driver {
	case config.GPIO_DRIVER:
		return NewMultiplexDisplay(param)
	case config.HT16K33_DRIVER:
		return NewBackpackDisplay(param)
	default:
		return NewSimulatedDisplay()
	}
}

func initHost() {
	if _, err := host.Init(); err != nil {
		logrus.Fatalf("Unable to initialize periph host: %v", err)
	}
}

func lookupPin(name string) gpio.PinIO {
	pin := gpioreg.ByName(name)
	if pin == nil {
		logrus.Fatalf("Failed to find %s pin", name)
	}
	return pin
}
