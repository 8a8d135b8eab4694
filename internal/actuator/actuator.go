package actuator

import (
	"github.com/markusressel/fps2go/internal/configuration"
)

// Actuator applies a limit to the host process
type Actuator interface {
	GetId() string

	// Apply hands the given limit to the host
	Apply(value int) error
}

// NewActuator creates the configured actuator, falling back to a LogActuator
// if none is configured.
func NewActuator(config configuration.ActuatorConfig) Actuator {
	if config.File != nil {
		return &FileActuator{
			Config: *config.File,
		}
	}

	if config.Cmd != nil {
		return &CmdActuator{
			Config: *config.Cmd,
		}
	}

	return &LogActuator{}
}
