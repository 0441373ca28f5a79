package device

import (
	"testing"
	"time"

	"github.com/jypelle/ledclock/internal/srv/config"
	"github.com/jypelle/ledclock/internal/srv/event"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

var buttonParam = config.ButtonParam{
	Pin:               "BTN",
	DebounceDelay:     10 * time.Millisecond,
	LongPressDuration: 500 * time.Millisecond,
}

func TestButtonUpdate(t *testing.T) {
	ms := func(n int) time.Time { return time.Unix(0, 0).Add(time.Duration(n) * time.Millisecond) }

	type step struct {
		at      int
		pressed bool
		want    *event.ButtonEvent
	}
	tests := []struct {
		name  string
		steps []step
	}{
		{"short press", []step{
			{0, true, nil},
			{5, true, nil},
			{10, true, &event.ButtonEvent{ButtonEventType: event.DOWN_EVENT_TYPE}},
			{100, false, nil},
			{110, false, &event.ButtonEvent{ButtonEventType: event.UP_EVENT_TYPE, Held: 100 * time.Millisecond}},
			{200, false, nil},
		}},
		{"bounce ignored", []step{
			{0, true, nil},
			{3, false, nil},
			{6, true, nil},
			{9, false, nil},
			{30, false, nil},
		}},
		{"bounce during release", []step{
			{0, true, nil},
			{10, true, &event.ButtonEvent{ButtonEventType: event.DOWN_EVENT_TYPE}},
			{50, false, nil},
			{55, true, nil},
			{65, true, nil},
			{80, false, nil},
			{90, false, &event.ButtonEvent{ButtonEventType: event.UP_EVENT_TYPE, Held: 80 * time.Millisecond}},
		}},
		{"long press", []step{
			{0, true, nil},
			{10, true, &event.ButtonEvent{ButtonEventType: event.DOWN_EVENT_TYPE}},
			{499, true, nil},
			{500, true, &event.ButtonEvent{ButtonEventType: event.LONG_PRESS_EVENT_TYPE, Held: 500 * time.Millisecond}},
			{700, true, nil},
			{900, false, nil},
			{910, false, &event.ButtonEvent{ButtonEventType: event.UP_EVENT_TYPE, Long: true, Held: 900 * time.Millisecond}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newButton(nil, buttonParam)
			for _, s := range tt.steps {
				got, ok := b.update(s.pressed, ms(s.at))
				if s.want == nil {
					if ok {
						t.Fatalf("at %dms: unexpected event %+v", s.at, got)
					}
					continue
				}
				if !ok {
					t.Fatalf("at %dms: no event, want %+v", s.at, *s.want)
				}
				if got != *s.want {
					t.Fatalf("at %dms: event %+v, want %+v", s.at, got, *s.want)
				}
			}
		})
	}
}

func TestButtonRefreshReadsPin(t *testing.T) {
	pin := &gpiotest.Pin{N: "BTN", L: gpio.High}
	b := newButton(pin, buttonParam)
	events := make(chan event.ButtonEvent, 4)
	start := time.Now()

	b.Refresh(start, events)
	pin.Out(gpio.Low)
	b.Refresh(start.Add(time.Millisecond), events)
	b.Refresh(start.Add(20*time.Millisecond), events)

	select {
	case ev := <-events:
		if ev.ButtonEventType != event.DOWN_EVENT_TYPE {
			t.Errorf("event %v, want %v", ev.ButtonEventType, event.DOWN_EVENT_TYPE)
		}
	default:
		t.Fatal("no event after press")
	}
	if len(events) != 0 {
		t.Errorf("%d extra events", len(events))
	}
}

func TestButtonsSimulationStartStop(t *testing.T) {
	d := NewButtons(true, buttonParam)
	d.Start()
	time.Sleep(20 * time.Millisecond)
	d.StopSendingEvent()
}
