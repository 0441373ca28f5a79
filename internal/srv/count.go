package srv

import (
	"time"

	"github.com/jypelle/ledclock/internal/segment"
	"github.com/sirupsen/logrus"
)

const (
	countLimit    = 10000
	countInterval = 10 * time.Millisecond
)

// Count shows 0 to 10000 on the display, one number every 10ms, unless
// askStop is closed first.
func (s *ServerApp) Count(askStop <-chan struct{}) {
	logrus.Printf("Counting to %d ...", countLimit)

	s.virtualDisplay.Start()
	defer s.virtualDisplay.Stop()

	ticker := time.NewTicker(countInterval)
	defer ticker.Stop()

	for n := uint(0); n <= countLimit; n++ {
		s.virtualDisplay.WriteBitmap(segment.FromNumber(n, 0))
		select {
		case <-ticker.C:
		case <-askStop:
			logrus.Infof("Count interrupted at %d", n)
			return
		}
	}
}
