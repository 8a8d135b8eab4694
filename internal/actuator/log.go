package actuator

import "github.com/markusressel/fps2go/internal/ui"

// LogActuator only logs the limit, nothing is applied to the host
type LogActuator struct{}

func (a *LogActuator) GetId() string {
	return "log"
}

func (a *LogActuator) Apply(value int) error {
	ui.Info("Limit: %d", value)
	return nil
}
