package device

import (
	"sync"
	"time"

	"github.com/jypelle/ledclock/internal/srv/event"
	"github.com/sirupsen/logrus"
)

// Clock ticks every second and keeps the offset set by the user from the
// system time. The offset is not saved.
type Clock struct {
	lock         sync.RWMutex
	eventChannel chan event.TickerEvent

	source       func() time.Time
	tickInterval time.Duration
	offset       time.Duration

	refreshClockTicker *time.Ticker

	askDone chan bool
	done    chan bool
}

func NewClock() *Clock {
	return NewClockWithSource(time.Now, time.Second)
}

// NewClockWithSource returns a clock reading time from source and ticking
// every tickInterval.
func NewClockWithSource(source func() time.Time, tickInterval time.Duration) *Clock {
	clock := Clock{
		eventChannel: make(chan event.TickerEvent),
		source:       source,
		tickInterval: tickInterval,
		askDone:      make(chan bool),
		done:         make(chan bool),
	}
	return &clock
}

func (d *Clock) Start() {
	logrus.Infof("Start clock device")
	d.lock.Lock()
	defer d.lock.Unlock()

	d.refreshClockTicker = time.NewTicker(d.tickInterval)

	go func() {
		for loop := true; loop; {
			select {
			case <-d.refreshClockTicker.C:
				select {
				case d.eventChannel <- event.TickerEvent{Data: event.TickerEventTickData{Now: d.Now()}}:
				case <-d.askDone:
					loop = false
				}
			case <-d.askDone:
				loop = false
			}
		}
		d.done <- true
	}()
}

func (d *Clock) StopSendingEvent() {
	logrus.Infof("Stop clock device")

	d.lock.Lock()
	ticker := d.refreshClockTicker
	d.lock.Unlock()

	ticker.Stop()
	d.askDone <- true
	<-d.done
}

func (d *Clock) EventChannel() chan event.TickerEvent {
	return d.eventChannel
}

// Now returns the adjusted time.
func (d *Clock) Now() time.Time {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.source().Add(d.offset)
}

// Adjust moves the clock by delta.
func (d *Clock) Adjust(delta time.Duration) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.offset += delta
	logrus.Debugf("New clock offset: %v", d.offset)
}
