package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadServerConfigCreatesDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ledclock")

	sc, err := LoadServerConfig(dir, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(sc.GetCompleteParamFilename()); err != nil {
		t.Errorf("default param file not written: %v", err)
	}

	dp := sc.DisplayParam
	if dp.Driver != GPIO_DRIVER {
		t.Errorf("Driver = %q, want %q", dp.Driver, GPIO_DRIVER)
	}
	if len(dp.DigitPins) != 4 || len(dp.SegmentPins) != 8 {
		t.Errorf("pins = %v / %v, want 4 / 8", dp.DigitPins, dp.SegmentPins)
	}
	if dp.MultiplexSleep != 3*time.Millisecond {
		t.Errorf("MultiplexSleep = %v, want 3ms", dp.MultiplexSleep)
	}
	if dp.I2cAddress != 0x70 {
		t.Errorf("I2cAddress = %#x, want 0x70", dp.I2cAddress)
	}
	if sc.BlinkParam.OnDelay != 150*time.Millisecond || sc.BlinkParam.OffDelay != 50*time.Millisecond {
		t.Errorf("BlinkParam = %+v, want 150ms / 50ms", sc.BlinkParam)
	}
	if sc.ButtonParam.DebounceDelay != 10*time.Millisecond || sc.ButtonParam.LongPressDuration != 500*time.Millisecond {
		t.Errorf("ButtonParam = %+v, want 10ms / 500ms", sc.ButtonParam)
	}

	if ep := sc.EditParam; ep.HourSpeed != 500*time.Millisecond || ep.MinuteSpeed != 250*time.Millisecond || ep.IdleTimeout != 5*time.Second {
		t.Errorf("EditParam = %+v, want 500ms / 250ms / 5s", ep)
	}

	// Second load reads back the saved file.
	again, err := LoadServerConfig(dir, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if again.BlinkParam != sc.BlinkParam || again.DisplayParam.MultiplexSleep != dp.MultiplexSleep {
		t.Errorf("reloaded param = %+v, want %+v", *again.ServerParam, *sc.ServerParam)
	}
}

func TestLoadServerConfigSimulation(t *testing.T) {
	sc, err := LoadServerConfig(t.TempDir(), true, true)
	if err != nil {
		t.Fatal(err)
	}
	if sc.DisplayParam.Driver != SIMULATION_DRIVER {
		t.Errorf("Driver = %q, want %q", sc.DisplayParam.Driver, SIMULATION_DRIVER)
	}
}

func TestLoadServerConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	raw := "display:\n  driver: simulation\nblink:\n  on_delay: 300ms\n"
	if err := os.WriteFile(filepath.Join(dir, paramFilename), []byte(raw), 0660); err != nil {
		t.Fatal(err)
	}

	sc, err := LoadServerConfig(dir, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if sc.DisplayParam.Driver != SIMULATION_DRIVER {
		t.Errorf("Driver = %q, want %q", sc.DisplayParam.Driver, SIMULATION_DRIVER)
	}
	if sc.BlinkParam.OnDelay != 300*time.Millisecond || sc.BlinkParam.OffDelay != 50*time.Millisecond {
		t.Errorf("BlinkParam = %+v, want 300ms / 50ms", sc.BlinkParam)
	}
	if sc.EditParam.MinuteSpeed != 250*time.Millisecond {
		t.Errorf("MinuteSpeed = %v, want 250ms", sc.EditParam.MinuteSpeed)
	}
}

func TestLoadServerConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "display: [\n"},
		{"unknown driver", "display:\n  driver: vfd\nblink: {on_delay: 1ms, off_delay: 1ms}\nbutton: {debounce_delay: 1ms, long_press_duration: 2ms}\n"},
		{"missing pins", "display:\n  driver: gpio\n  digit_pins: [A]\n  multiplex_sleep: 1ms\nblink: {on_delay: 1ms, off_delay: 1ms}\nbutton: {debounce_delay: 1ms, long_press_duration: 2ms}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, paramFilename), []byte(tt.yaml), 0660); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadServerConfig(dir, false, false); err == nil {
				t.Error("expected error but didn't get one")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() ServerParam {
		return ServerParam{
			DisplayParam: DisplayParam{
				Driver:         GPIO_DRIVER,
				DigitPins:      []string{"1", "2", "3", "4"},
				SegmentPins:    []string{"a", "b", "c", "d", "e", "f", "g", "dp"},
				MultiplexSleep: time.Millisecond,
			},
			BlinkParam:  BlinkParam{OnDelay: 150 * time.Millisecond, OffDelay: 50 * time.Millisecond},
			ButtonParam: ButtonParam{DebounceDelay: 10 * time.Millisecond, LongPressDuration: 500 * time.Millisecond},
			EditParam:   EditParam{HourSpeed: 500 * time.Millisecond, MinuteSpeed: 250 * time.Millisecond, IdleTimeout: 5 * time.Second},
		}
	}
	tests := []struct {
		name    string
		modify  func(sp *ServerParam)
		wantErr bool
	}{
		{"valid gpio", func(sp *ServerParam) {}, false},
		{"valid simulation", func(sp *ServerParam) { sp.DisplayParam = DisplayParam{Driver: SIMULATION_DRIVER} }, false},
		{"valid ht16k33", func(sp *ServerParam) { sp.DisplayParam = DisplayParam{Driver: HT16K33_DRIVER, I2cAddress: 0x70} }, false},
		{"ht16k33 without address", func(sp *ServerParam) { sp.DisplayParam = DisplayParam{Driver: HT16K33_DRIVER} }, true},
		{"too many digits", func(sp *ServerParam) { sp.DisplayParam.DigitPins = append(sp.DisplayParam.DigitPins, "5") }, true},
		{"missing segment", func(sp *ServerParam) { sp.DisplayParam.SegmentPins = sp.DisplayParam.SegmentPins[:7] }, true},
		{"zero multiplex", func(sp *ServerParam) { sp.DisplayParam.MultiplexSleep = 0 }, true},
		{"zero blink", func(sp *ServerParam) { sp.BlinkParam.OffDelay = 0 }, true},
		{"zero debounce", func(sp *ServerParam) { sp.ButtonParam.DebounceDelay = 0 }, true},
		{"short long press", func(sp *ServerParam) { sp.ButtonParam.LongPressDuration = sp.ButtonParam.DebounceDelay }, true},
		{"zero edit speed", func(sp *ServerParam) { sp.EditParam.MinuteSpeed = 0 }, true},
		{"zero idle timeout", func(sp *ServerParam) { sp.EditParam.IdleTimeout = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := valid()
			tt.modify(&sp)
			err := sp.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
