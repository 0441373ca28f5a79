package device

import (
	"time"

	"github.com/jypelle/ledclock/internal/mailbox"
	"github.com/jypelle/ledclock/internal/segment"
	"github.com/jypelle/ledclock/internal/srv/config"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// MultiplexDisplay drives the display directly from GPIO lines: segment
// lines are shared by all cells and each cell has its own strobe line.
// Cells showing the same pattern are strobed together.
type MultiplexDisplay struct {
	digitPins      [segment.CellCount]gpio.PinOut
	segmentPins    [segment.SegmentCount]gpio.PinOut
	multiplexSleep time.Duration

	bitmaps *mailbox.Mailbox[segment.Bitmap]

	askDone chan bool
	done    chan bool
}

func NewMultiplexDisplay(param config.DisplayParam) *MultiplexDisplay {
	initHost()

	var digitPins [segment.CellCount]gpio.PinOut
	for i, name := range param.DigitPins {
		digitPins[i] = lookupPin(name)
	}
	var segmentPins [segment.SegmentCount]gpio.PinOut
	for i, name := range param.SegmentPins {
		segmentPins[i] = lookupPin(name)
	}
	return newMultiplexDisplay(digitPins, segmentPins, param.MultiplexSleep)
}

func newMultiplexDisplay(digitPins [segment.CellCount]gpio.PinOut, segmentPins [segment.SegmentCount]gpio.PinOut, multiplexSleep time.Duration) *MultiplexDisplay {
	return &MultiplexDisplay{
		digitPins:      digitPins,
		segmentPins:    segmentPins,
		multiplexSleep: multiplexSleep,
		bitmaps:        mailbox.New[segment.Bitmap](),
		askDone:        make(chan bool),
		done:           make(chan bool),
	}
}

func (d *MultiplexDisplay) Start() {
	logrus.Infof("Start multiplex display device")

	d.allDigitsOff()
	for _, pin := range d.segmentPins {
		pin.Out(gpio.Low)
	}

	go d.refreshLoop()
}

func (d *MultiplexDisplay) Stop() {
	logrus.Infof("Stop multiplex display device")
	d.askDone <- true
	<-d.done
}

func (d *MultiplexDisplay) WriteChars(chars [segment.CellCount]rune) {
	d.WriteBitmap(segment.FromChars(chars))
}

func (d *MultiplexDisplay) WriteBitmap(bitmap segment.Bitmap) {
	d.bitmaps.Signal(bitmap)
}

func (d *MultiplexDisplay) refreshLoop() {
	var groups segment.Groups
	for loop := true; loop; {
		if groups.Len() == 0 {
			// Nothing lit: park until the next bitmap
			select {
			case bitmap := <-d.bitmaps.C():
				groups = group(bitmap)
			case <-d.askDone:
				loop = false
			}
			continue
		}

		select {
		case bitmap := <-d.bitmaps.C():
			groups = group(bitmap)
		case <-d.askDone:
			loop = false
		default:
			d.strobe(&groups)
		}
	}
	d.allDigitsOff()
	d.done <- true
}

func group(bitmap segment.Bitmap) segment.Groups {
	groups, err := bitmap.Group()
	if err != nil {
		logrus.Warnf("Unable to display %v: %v", bitmap, err)
	}
	return groups
}

// strobe lights every group once.
func (d *MultiplexDisplay) strobe(groups *segment.Groups) {
	for i := 0; i < groups.Len(); i++ {
		g := groups.At(i)
		d.showGroup(g.Bits, g.Indexes())
		time.Sleep(d.multiplexSleep)
		d.allDigitsOff()
	}
}

func (d *MultiplexDisplay) showGroup(bits uint8, indexes []int) {
	for s, pin := range d.segmentPins {
		pin.Out(gpio.Level(bits&(1<<s) != 0))
	}
	// digit lines sink current: low lights the cell
	for _, index := range indexes {
		d.digitPins[index].Out(gpio.Low)
	}
}

func (d *MultiplexDisplay) allDigitsOff() {
	for _, pin := range d.digitPins {
		pin.Out(gpio.High)
	}
}
