package device

import (
	"sync"
	"time"

	"github.com/jypelle/ledclock/internal/srv/config"
	"github.com/jypelle/ledclock/internal/srv/event"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

type Button struct {
	pin               gpio.PinIn
	debounceDelay     time.Duration
	longPressDuration time.Duration

	// debounced state
	isPressed bool
	pressedAt time.Time
	longSent  bool

	// raw reading and since when it is stable
	rawPressed bool
	rawSince   time.Time
}

func NewButton(name string, param config.ButtonParam) *Button {
	pin := lookupPin(name)

	// Set it as input, with an internal pull up resistor:
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		logrus.Fatalf("Failed to setup %s button: %v", name, err)
	}
	return newButton(pin, param)
}

func newButton(pin gpio.PinIn, param config.ButtonParam) *Button {
	return &Button{
		pin:               pin,
		debounceDelay:     param.DebounceDelay,
		longPressDuration: param.LongPressDuration,
	}
}

func (b *Button) Refresh(now time.Time, buttonEventChannel chan event.ButtonEvent) {
	// pulled up: pressed reads low
	if ev, ok := b.update(b.pin.Read() == gpio.Low, now); ok {
		buttonEventChannel <- ev
	}
}

// update feeds a raw reading taken at now. A change is only accepted once
// the reading has been stable for the debounce delay.
func (b *Button) update(rawPressed bool, now time.Time) (event.ButtonEvent, bool) {
	if rawPressed != b.rawPressed {
		b.rawPressed = rawPressed
		b.rawSince = now
	}

	if b.rawPressed != b.isPressed && now.Sub(b.rawSince) >= b.debounceDelay {
		b.isPressed = b.rawPressed
		if b.isPressed {
			b.pressedAt = b.rawSince
			b.longSent = false
			return event.ButtonEvent{ButtonEventType: event.DOWN_EVENT_TYPE}, true
		}
		return event.ButtonEvent{
			ButtonEventType: event.UP_EVENT_TYPE,
			Long:            b.longSent,
			Held:            b.rawSince.Sub(b.pressedAt),
		}, true
	}

	if b.isPressed && !b.longSent && now.Sub(b.pressedAt) >= b.longPressDuration {
		b.longSent = true
		return event.ButtonEvent{ButtonEventType: event.LONG_PRESS_EVENT_TYPE, Held: now.Sub(b.pressedAt)}, true
	}

	return event.ButtonEvent{}, false
}

type Buttons struct {
	lock         sync.RWMutex
	eventChannel chan event.ButtonEvent
	simulation   bool
	param        config.ButtonParam

	buttons []*Button

	checkTicker *time.Ticker

	askDone chan bool
	done    chan bool
}

func NewButtons(simulation bool, param config.ButtonParam) *Buttons {
	if !simulation {
		initHost()
	}

	device := Buttons{
		eventChannel: make(chan event.ButtonEvent),
		simulation:   simulation,
		param:        param,
		askDone:      make(chan bool),
		done:         make(chan bool),
	}

	return &device
}

func (d *Buttons) Start() {
	logrus.Infof("Start buttons device")

	d.lock.Lock()
	defer d.lock.Unlock()

	if !d.simulation {
		d.buttons = append(d.buttons, NewButton(d.param.Pin, d.param))
	}

	d.start()
}

func (d *Buttons) start() {
	// Start periodic check
	d.checkTicker = time.NewTicker(5 * time.Millisecond)
	go func() {
		for loop := true; loop; {
			select {
			case now := <-d.checkTicker.C:
				for _, button := range d.buttons {
					button.Refresh(now, d.eventChannel)
				}
			case <-d.askDone:
				loop = false
			}
		}
		d.done <- true
	}()
}

// StopSendingEvent must be called while EventChannel is still consumed.
func (d *Buttons) StopSendingEvent() {
	logrus.Infof("Stop buttons device")

	d.lock.Lock()
	defer d.lock.Unlock()

	d.checkTicker.Stop()
	d.askDone <- true
	<-d.done
}

func (d *Buttons) EventChannel() chan event.ButtonEvent {
	return d.eventChannel
}
