package srv

import (
	"time"

	"github.com/jypelle/ledclock/internal/srv/event"
	"github.com/sirupsen/logrus"
)

func (s *ServerApp) eventLoop() {
	for loop := true; loop; {
		select {
		case ev := <-s.clockDevice.EventChannel():
			switch ev.Data.(type) {
			case event.TickerEventTickData:
				s.checkEditIdle(time.Now())
				s.refreshDisplay()
			}
		case ev := <-s.buttonsDevice.EventChannel():
			logrus.Debugf("Receive button event: %v (held %v)", ev.ButtonEventType, ev.Held)
			s.handleButtonEvent(ev, time.Now())
		case <-s.editRepeatChannel():
			s.stepEdit()
			s.refreshDisplay()
		case <-s.eventLoopAskDone:
			loop = false
		}
	}
	s.eventLoopDone <- true
}

func (s *ServerApp) handleButtonEvent(ev event.ButtonEvent, now time.Time) {
	s.lastButtonActivity = now

	switch ev.ButtonEventType {
	case event.LONG_PRESS_EVENT_TYPE:
		switch s.currentMode {
		case HOURS_MINUTES_MODE, MINUTES_SECONDS_MODE:
			s.currentMode = EDIT_HOURS_MODE
			logrus.Debugf("Switch to %v mode", s.currentMode)
		case EDIT_HOURS_MODE, EDIT_MINUTES_MODE:
			// step now, then repeat until released
			s.stepEdit()
			s.startEditRepeat()
		}
		s.refreshDisplay()
	case event.UP_EVENT_TYPE:
		s.stopEditRepeat()
		if ev.Long {
			// already handled by the long press
			return
		}
		switch s.currentMode {
		case HOURS_MINUTES_MODE:
			s.currentMode = MINUTES_SECONDS_MODE
		case MINUTES_SECONDS_MODE:
			s.currentMode = HOURS_MINUTES_MODE
		case EDIT_HOURS_MODE, EDIT_MINUTES_MODE:
			s.stepEdit()
		}
		s.refreshDisplay()
	}
}

// stepEdit adds one to the edited field.
func (s *ServerApp) stepEdit() {
	switch s.currentMode {
	case EDIT_HOURS_MODE:
		s.clockDevice.Adjust(time.Hour)
	case EDIT_MINUTES_MODE:
		// stay within the hour
		if s.clockDevice.Now().Minute() == 59 {
			s.clockDevice.Adjust(-59 * time.Minute)
		} else {
			s.clockDevice.Adjust(time.Minute)
		}
	}
}

// checkEditIdle moves to the next field once the button has been left
// alone for the idle timeout.
func (s *ServerApp) checkEditIdle(now time.Time) {
	if s.editRepeat != nil || now.Sub(s.lastButtonActivity) < s.EditParam.IdleTimeout {
		return
	}
	switch s.currentMode {
	case EDIT_HOURS_MODE:
		s.currentMode = EDIT_MINUTES_MODE
		s.lastButtonActivity = now
	case EDIT_MINUTES_MODE:
		s.currentMode = HOURS_MINUTES_MODE
	default:
		return
	}
	logrus.Debugf("Switch to %v mode", s.currentMode)
}

func (s *ServerApp) editSpeed() time.Duration {
	if s.currentMode == EDIT_HOURS_MODE {
		return s.EditParam.HourSpeed
	}
	return s.EditParam.MinuteSpeed
}

func (s *ServerApp) startEditRepeat() {
	s.stopEditRepeat()
	s.editRepeat = time.NewTicker(s.editSpeed())
}

func (s *ServerApp) stopEditRepeat() {
	if s.editRepeat != nil {
		s.editRepeat.Stop()
		s.editRepeat = nil
	}
}

// editRepeatChannel is nil, and never ready, unless the button is held in
// an edit mode.
func (s *ServerApp) editRepeatChannel() <-chan time.Time {
	if s.editRepeat == nil {
		return nil
	}
	return s.editRepeat.C
}
