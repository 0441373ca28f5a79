package device

import (
	"sync"

	"github.com/jypelle/ledclock/internal/segment"
	"github.com/jypelle/ledclock/internal/srv/config"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ht16k33"
)

// BackpackDisplay renders on a 4 digit HT16K33 seven segment backpack. The
// chip does the multiplexing itself.
type BackpackDisplay struct {
	lock      sync.Mutex
	param     config.DisplayParam
	i2cBus    i2c.BusCloser
	backpack  *ht16k33.Dev
	lastWrite segment.Bitmap
}

func NewBackpackDisplay(param config.DisplayParam) *BackpackDisplay {
	initHost()
	return &BackpackDisplay{param: param}
}

func (d *BackpackDisplay) Start() {
	logrus.Infof("Start ht16k33 display device")

	d.lock.Lock()
	defer d.lock.Unlock()

	var err error
	d.i2cBus, err = i2creg.Open(d.param.I2cBus)
	if err != nil {
		logrus.Fatalf("Unable to open i2c bus: %v\n", err)
	}

	d.backpack, err = ht16k33.NewI2C(d.i2cBus, d.param.I2cAddress)
	if err != nil {
		logrus.Fatalf("Unable to initialize ht16k33 display: %v\n", err)
	}
	d.write(segment.Bitmap{})
}

func (d *BackpackDisplay) Stop() {
	logrus.Infof("Stop ht16k33 display device")

	d.lock.Lock()
	defer d.lock.Unlock()

	if err := d.backpack.Halt(); err != nil {
		logrus.Warnf("Unable to halt ht16k33 display: %v", err)
	}
	d.i2cBus.Close()
}

func (d *BackpackDisplay) WriteChars(chars [segment.CellCount]rune) {
	d.WriteBitmap(segment.FromChars(chars))
}

func (d *BackpackDisplay) WriteBitmap(bitmap segment.Bitmap) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if bitmap == d.lastWrite {
		return
	}
	d.write(bitmap)
}

func (d *BackpackDisplay) write(bitmap segment.Bitmap) {
	for cell, bits := range bitmap {
		if err := d.backpack.WriteColumn(backpackColumn(cell), uint16(bits)); err != nil {
			logrus.Warnf("Unable to write cell %d: %v", cell, err)
			return
		}
	}
	d.lastWrite = bitmap
}

// backpackColumn skips column 2, wired to the colon.
func backpackColumn(cell int) int {
	if cell >= 2 {
		return cell + 1
	}
	return cell
}
