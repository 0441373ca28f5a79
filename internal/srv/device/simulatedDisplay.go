package device

import (
	"sync"

	"github.com/jypelle/ledclock/internal/segment"
	"github.com/sirupsen/logrus"
)

// SimulatedDisplay logs what a real display would show.
type SimulatedDisplay struct {
	lock    sync.RWMutex
	bitmap  segment.Bitmap
	updates int
}

func NewSimulatedDisplay() *SimulatedDisplay {
	return &SimulatedDisplay{}
}

func (d *SimulatedDisplay) Start() {
	logrus.Infof("Start simulated display device")
}

func (d *SimulatedDisplay) Stop() {
	logrus.Infof("Stop simulated display device")
}

func (d *SimulatedDisplay) WriteChars(chars [segment.CellCount]rune) {
	d.WriteBitmap(segment.FromChars(chars))
}

func (d *SimulatedDisplay) WriteBitmap(bitmap segment.Bitmap) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if bitmap != d.bitmap {
		logrus.Infof("Display %v", bitmap)
		d.updates++
	}
	d.bitmap = bitmap
}

// Bitmap returns what is currently shown.
func (d *SimulatedDisplay) Bitmap() segment.Bitmap {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.bitmap
}

// Updates counts the writes that changed the display.
func (d *SimulatedDisplay) Updates() int {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.updates
}
