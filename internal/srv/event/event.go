package event

import "time"

// Ticker
type TickerEvent struct {
	Data interface{}
}

type TickerEventTickData struct {
	Now time.Time
}

// Buttons
type ButtonEventType int

const (
	DOWN_EVENT_TYPE ButtonEventType = iota
	LONG_PRESS_EVENT_TYPE
	UP_EVENT_TYPE
)

func (t ButtonEventType) String() string {
	switch t {
	case DOWN_EVENT_TYPE:
		return "down"
	case LONG_PRESS_EVENT_TYPE:
		return "long press"
	case UP_EVENT_TYPE:
		return "up"
	}
	return "unknown"
}

type ButtonEvent struct {
	ButtonEventType ButtonEventType
	// Set on UP_EVENT_TYPE when a LONG_PRESS_EVENT_TYPE was sent for this press.
	Long bool
	// Time the button has been held.
	Held time.Duration
}
