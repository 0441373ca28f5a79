package srv

import (
	"time"

	"github.com/jypelle/ledclock/internal/segment"
	"github.com/jypelle/ledclock/internal/srv/config"
	"github.com/jypelle/ledclock/internal/srv/device"
	"github.com/jypelle/ledclock/internal/version"
	"github.com/sirupsen/logrus"
)

// charsWriter is the presentation side of the blinkable display.
type charsWriter interface {
	WriteChars(chars [segment.CellCount]rune, blinkMode device.BlinkMode)
}

type ServerApp struct {
	*config.ServerConfig
	virtualDisplay    device.VirtualDisplay
	blinkableNotifier *device.BlinkableNotifier
	blinkableDisplay  *device.BlinkableDisplay
	clockDevice       *device.Clock
	buttonsDevice     *device.Buttons

	display        charsWriter
	currentMode    Mode
	shownChars     [segment.CellCount]rune
	shownBlinkMode device.BlinkMode
	shown          bool

	// running while the button is held in an edit mode
	editRepeat         *time.Ticker
	lastButtonActivity time.Time

	eventLoopAskDone chan bool
	eventLoopDone    chan bool
}

type Mode int64

const (
	UNDEFINED_MODE Mode = iota
	HOURS_MINUTES_MODE
	MINUTES_SECONDS_MODE
	EDIT_HOURS_MODE
	EDIT_MINUTES_MODE
	END_MODE
)

func (m Mode) String() string {
	switch m {
	case UNDEFINED_MODE:
		return "undefined"
	case HOURS_MINUTES_MODE:
		return "hours:minutes"
	case MINUTES_SECONDS_MODE:
		return "minutes:seconds"
	case EDIT_HOURS_MODE:
		return "edit hours"
	case EDIT_MINUTES_MODE:
		return "edit minutes"
	case END_MODE:
		return "end"
	}
	return "unknown"
}

// Duration of the startup pattern.
const startupDelay = time.Second

func NewServerApp(configDir string, debugMode bool, simulationMode bool) *ServerApp {

	logrus.Debugf("Creation of ledclock server %s ...", version.AppVersion.String())

	app := &ServerApp{
		currentMode:       UNDEFINED_MODE,
		blinkableNotifier: device.NewBlinkableNotifier(),
		eventLoopAskDone:  make(chan bool),
		eventLoopDone:     make(chan bool),
		ServerConfig:      config.NewServerConfig(configDir, debugMode, simulationMode),
	}

	app.virtualDisplay = device.NewVirtualDisplay(app.DisplayParam)
	app.clockDevice = device.NewClock()
	app.buttonsDevice = device.NewButtons(app.SimulationMode, app.ButtonParam)

	logrus.Debugln("Server created")

	return app
}

func (s *ServerApp) Start() {
	logrus.Printf("Starting ledclock server ...")

	logrus.Printf("Starting devices ...")

	// Start display device
	s.virtualDisplay.Start()

	// Display startup screen: every decimal point lit
	s.virtualDisplay.WriteBitmap(segment.FromBits(segment.Decimal))
	time.Sleep(startupDelay)

	// From now on only the blinkable display writes to the virtual display
	s.blinkableDisplay = device.NewBlinkableDisplay(s.virtualDisplay, s.blinkableNotifier, s.BlinkParam)
	s.display = s.blinkableDisplay

	// Set clock mode
	s.currentMode = HOURS_MINUTES_MODE
	s.refreshDisplay()

	// Start event loop
	go s.eventLoop()

	// Start clock device
	s.clockDevice.Start()

	// Start buttons device
	s.buttonsDevice.Start()
}

func (s *ServerApp) Stop() {
	logrus.Printf("Stopping ledclock server ...")

	// Stop buttons device
	s.buttonsDevice.StopSendingEvent()

	// Stop clock device
	s.clockDevice.StopSendingEvent()

	// Stop event loop
	logrus.Infof("Stop event loop")
	s.eventLoopAskDone <- true
	<-s.eventLoopDone
	s.stopEditRepeat()

	// Display end mode
	s.currentMode = END_MODE
	s.refreshDisplay()

	// Stop display devices
	s.blinkableDisplay.Stop()

	logrus.Printf("Server stopped")
}
