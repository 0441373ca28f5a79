package srv

import (
	"time"

	"github.com/jypelle/ledclock/internal/segment"
	"github.com/jypelle/ledclock/internal/srv/device"
	"github.com/sirupsen/logrus"
)

// refreshDisplay shows the current mode. Unchanged content is not written
// again so that a running blink cycle is not restarted every tick.
func (s *ServerApp) refreshDisplay() {
	chars, blinkMode := clockChars(s.currentMode, s.clockDevice.Now())
	if s.shown && chars == s.shownChars && blinkMode == s.shownBlinkMode {
		return
	}
	logrus.Debugf("Display %q (%v)", string(chars[:]), blinkMode)
	s.display.WriteChars(chars, blinkMode)
	s.shownChars, s.shownBlinkMode, s.shown = chars, blinkMode, true
}

func clockChars(mode Mode, now time.Time) ([segment.CellCount]rune, device.BlinkMode) {
	switch mode {
	case HOURS_MINUTES_MODE:
		return device.Chars(now.Format("1504")), device.SOLID
	case MINUTES_SECONDS_MODE:
		return device.Chars(now.Format("0405")), device.SOLID
	case EDIT_HOURS_MODE:
		return device.Chars(now.Format("15")), device.BLINKING
	case EDIT_MINUTES_MODE:
		return device.Chars("  " + now.Format("04")), device.BLINKING
	}
	return device.BlankChars(), device.SOLID
}
