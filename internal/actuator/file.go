package actuator

import (
	"fmt"

	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/util"
)

// FileActuator writes the limit to a file, e.g. one watched by a server plugin
type FileActuator struct {
	Config configuration.FileActuatorConfig `json:"configuration"`
}

func (a *FileActuator) GetId() string {
	return "file"
}

func (a *FileActuator) Apply(value int) error {
	if err := util.WriteIntToFileAtomic(value, a.Config.Path); err != nil {
		return fmt.Errorf("unable to write limit to %s: %w", a.Config.Path, err)
	}
	return nil
}
