package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jypelle/ledclock/internal/segment"
)

//go:embed param_default.yaml
var ParamDefaultFile []byte

type DisplayDriver string

const (
	GPIO_DRIVER       DisplayDriver = "gpio"
	HT16K33_DRIVER    DisplayDriver = "ht16k33"
	SIMULATION_DRIVER DisplayDriver = "simulation"
)

type ServerParam struct {
	DisplayParam DisplayParam `yaml:"display"`
	BlinkParam   BlinkParam   `yaml:"blink"`
	ButtonParam  ButtonParam  `yaml:"button"`
	EditParam    EditParam    `yaml:"edit"`
}

type DisplayParam struct {
	Driver DisplayDriver `yaml:"driver"`

	// Cell strobe lines, leftmost cell first. Active low.
	DigitPins []string `yaml:"digit_pins"`
	// Segment lines A to G then DP. Active high.
	SegmentPins    []string      `yaml:"segment_pins"`
	MultiplexSleep time.Duration `yaml:"multiplex_sleep"`

	I2cBus     string `yaml:"i2c_bus"`
	I2cAddress uint16 `yaml:"i2c_address"`
}

type BlinkParam struct {
	OnDelay  time.Duration `yaml:"on_delay"`
	OffDelay time.Duration `yaml:"off_delay"`
}

type ButtonParam struct {
	Pin               string        `yaml:"pin"`
	DebounceDelay     time.Duration `yaml:"debounce_delay"`
	LongPressDuration time.Duration `yaml:"long_press_duration"`
}

// Time editing. While the button is held in an edit mode the edited field
// steps every HourSpeed / MinuteSpeed. Without button activity for
// IdleTimeout the next field is edited.
type EditParam struct {
	HourSpeed   time.Duration `yaml:"hour_speed"`
	MinuteSpeed time.Duration `yaml:"minute_speed"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks the parameters needed by the selected drivers.
func (sp *ServerParam) Validate() error {
	dp := sp.DisplayParam
	switch dp.Driver {
	case GPIO_DRIVER:
		if len(dp.DigitPins) != segment.CellCount {
			return fmt.Errorf("display: %d digit pins, want %d", len(dp.DigitPins), segment.CellCount)
		}
		if len(dp.SegmentPins) != segment.SegmentCount {
			return fmt.Errorf("display: %d segment pins, want %d", len(dp.SegmentPins), segment.SegmentCount)
		}
		if dp.MultiplexSleep <= 0 {
			return errors.New("display: multiplex_sleep must be positive")
		}
	case HT16K33_DRIVER:
		if dp.I2cAddress == 0 {
			return errors.New("display: i2c_address is required")
		}
	case SIMULATION_DRIVER:
	default:
		return fmt.Errorf("display: unknown driver %q", dp.Driver)
	}

	if sp.BlinkParam.OnDelay <= 0 || sp.BlinkParam.OffDelay <= 0 {
		return errors.New("blink: on_delay and off_delay must be positive")
	}
	if sp.ButtonParam.DebounceDelay <= 0 {
		return errors.New("button: debounce_delay must be positive")
	}
	if sp.ButtonParam.LongPressDuration <= sp.ButtonParam.DebounceDelay {
		return errors.New("button: long_press_duration must exceed debounce_delay")
	}
	if sp.EditParam.HourSpeed <= 0 || sp.EditParam.MinuteSpeed <= 0 {
		return errors.New("edit: hour_speed and minute_speed must be positive")
	}
	if sp.EditParam.IdleTimeout <= 0 {
		return errors.New("edit: idle_timeout must be positive")
	}
	return nil
}
