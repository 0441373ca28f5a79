package device

import (
	"time"

	"github.com/jypelle/ledclock/internal/mailbox"
	"github.com/jypelle/ledclock/internal/segment"
	"github.com/jypelle/ledclock/internal/srv/config"
	"github.com/sirupsen/logrus"
)

// BlinkMode is the phase of the blinkable display. Callers request SOLID
// or BLINKING; BLINKING_BUT_OFF is only reached by the blink cycle.
type BlinkMode int

const (
	SOLID BlinkMode = iota
	BLINKING_AND_ON
	BLINKING_BUT_OFF
)

// BLINKING starts a blink cycle with its lit phase.
const BLINKING = BLINKING_AND_ON

func (m BlinkMode) String() string {
	switch m {
	case SOLID:
		return "solid"
	case BLINKING_AND_ON:
		return "blinking (on)"
	case BLINKING_BUT_OFF:
		return "blinking (off)"
	}
	return "unknown"
}

// BlankChars returns a line of spaces, shown during the off phase of a blink.
func BlankChars() [segment.CellCount]rune {
	return [segment.CellCount]rune{' ', ' ', ' ', ' '}
}

// Chars left-aligns text into the cells, dropping what does not fit.
func Chars(text string) [segment.CellCount]rune {
	chars := BlankChars()
	i := 0
	for _, r := range text {
		if i == len(chars) {
			break
		}
		chars[i] = r
		i++
	}
	return chars
}

type blinkUpdate struct {
	blinkMode BlinkMode
	chars     [segment.CellCount]rune
}

// BlinkableNotifier carries the pending update of a BlinkableDisplay. Create
// a single one at startup and keep it for the life of the program.
type BlinkableNotifier struct {
	updates *mailbox.Mailbox[blinkUpdate]
}

func NewBlinkableNotifier() *BlinkableNotifier {
	return &BlinkableNotifier{updates: mailbox.New[blinkUpdate]()}
}

type blinkTimer interface {
	C() <-chan time.Time
	Stop() bool
}

type stdTimer struct {
	t *time.Timer
}

func newStdTimer(d time.Duration) blinkTimer {
	return stdTimer{t: time.NewTimer(d)}
}

func (t stdTimer) C() <-chan time.Time { return t.t.C }
func (t stdTimer) Stop() bool          { return t.t.Stop() }

// BlinkableDisplay adds blinking on top of a VirtualDisplay. It owns the
// virtual display: nothing else may write to it once wrapped.
//
// A background goroutine renders the current characters, then waits for
// either a new write or the end of the current phase. A new write always
// wins and restarts the cycle from its lit phase with a full delay.
type BlinkableDisplay struct {
	virtualDisplay VirtualDisplay
	notifier       *BlinkableNotifier

	onDelay  time.Duration
	offDelay time.Duration
	newTimer func(time.Duration) blinkTimer

	askDone chan bool
	done    chan bool
}

// NewBlinkableDisplay wraps a started virtual display and starts the
// blinking goroutine.
func NewBlinkableDisplay(virtualDisplay VirtualDisplay, notifier *BlinkableNotifier, param config.BlinkParam) *BlinkableDisplay {
	d := newBlinkableDisplay(virtualDisplay, notifier, param, newStdTimer)
	d.start()
	return d
}

func newBlinkableDisplay(virtualDisplay VirtualDisplay, notifier *BlinkableNotifier, param config.BlinkParam, newTimer func(time.Duration) blinkTimer) *BlinkableDisplay {
	return &BlinkableDisplay{
		virtualDisplay: virtualDisplay,
		notifier:       notifier,
		onDelay:        param.OnDelay,
		offDelay:       param.OffDelay,
		newTimer:       newTimer,
		askDone:        make(chan bool),
		done:           make(chan bool),
	}
}

func (d *BlinkableDisplay) start() {
	logrus.Infof("Start blinkable display device")
	go d.blinkLoop()
}

// Stop ends the blinking goroutine and stops the wrapped display.
func (d *BlinkableDisplay) Stop() {
	logrus.Infof("Stop blinkable display device")
	d.askDone <- true
	<-d.done
	d.virtualDisplay.Stop()
}

// WriteChars replaces what is shown. It never blocks: a write not yet
// picked up by the display is overwritten.
func (d *BlinkableDisplay) WriteChars(chars [segment.CellCount]rune, blinkMode BlinkMode) {
	logrus.Debugf("Write chars: %q, blink mode: %v", string(chars[:]), blinkMode)
	switch blinkMode {
	case SOLID, BLINKING_AND_ON:
	case BLINKING_BUT_OFF:
		blinkMode = BLINKING_AND_ON
	default:
		logrus.Warnf("Unknown blink mode %d, showing %q solid", blinkMode, string(chars[:]))
		blinkMode = SOLID
	}
	d.notifier.updates.Signal(blinkUpdate{blinkMode: blinkMode, chars: chars})
}

func (d *BlinkableDisplay) blinkLoop() {
	blinkMode := SOLID
	chars := BlankChars()

	for loop := true; loop; {
		var update blinkUpdate
		var received bool

		switch blinkMode {
		case BLINKING_AND_ON:
			d.virtualDisplay.WriteChars(chars)
			update, received, loop = d.wait(d.onDelay)
			if !received {
				blinkMode = BLINKING_BUT_OFF
			}
		case BLINKING_BUT_OFF:
			// stored chars are kept for the next lit phase
			d.virtualDisplay.WriteChars(BlankChars())
			update, received, loop = d.wait(d.offDelay)
			if !received {
				blinkMode = BLINKING_AND_ON
			}
		default: // SOLID
			d.virtualDisplay.WriteChars(chars)
			update, received, loop = d.wait(0)
		}

		if received {
			blinkMode, chars = update.blinkMode, update.chars
		}
	}

	// a write made just before Stop is still shown
	if update, ok := d.notifier.updates.TryTake(); ok {
		d.virtualDisplay.WriteChars(update.chars)
	}
	d.done <- true
}

// wait returns the next update, or received == false once delay expires.
// A zero delay waits for an update only. When the timer and an update are
// both ready, the update is returned. running is false once stopped.
func (d *BlinkableDisplay) wait(delay time.Duration) (update blinkUpdate, received bool, running bool) {
	updates := d.notifier.updates.C()

	if delay == 0 {
		select {
		case update = <-updates:
			return update, true, true
		case <-d.askDone:
			return update, false, false
		}
	}

	timer := d.newTimer(delay)
	defer timer.Stop()

	select {
	case update = <-updates:
		return update, true, true
	case <-timer.C():
		update, received = d.notifier.updates.TryTake()
		return update, received, true
	case <-d.askDone:
		return update, false, false
	}
}
