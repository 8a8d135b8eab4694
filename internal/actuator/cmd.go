package actuator

import (
	"strconv"
	"strings"
	"time"

	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/util"
)

const defaultCmdTimeout = 2 * time.Second

// CmdActuator runs an executable to apply the limit
type CmdActuator struct {
	Config configuration.CmdActuatorConfig `json:"configuration"`
}

func (a *CmdActuator) GetId() string {
	return "cmd"
}

func (a *CmdActuator) Apply(value int) error {
	timeout := a.Config.Timeout
	if timeout <= 0 {
		timeout = defaultCmdTimeout
	}
	_, err := util.SafeCmdExecution(a.Config.Exec, buildArgs(a.Config.Args, value), timeout)
	return err
}

// buildArgs replaces the value placeholder in all args,
// the value is appended if no arg contains the placeholder.
func buildArgs(args []string, value int) []string {
	valueString := strconv.Itoa(value)
	result := make([]string, 0, len(args)+1)
	replaced := false
	for _, arg := range args {
		if strings.Contains(arg, configuration.ActuatorValuePlaceholder) {
			replaced = true
			arg = strings.ReplaceAll(arg, configuration.ActuatorValuePlaceholder, valueString)
		}
		result = append(result, arg)
	}
	if !replaced {
		result = append(result, valueString)
	}
	return result
}
