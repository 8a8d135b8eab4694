package load

import (
	"fmt"
	"strconv"
	"time"

	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/util"
)

const defaultCmdTimeout = 2 * time.Second

// CmdSource reads the load from the output of an executable
type CmdSource struct {
	Config configuration.CmdLoadConfig `json:"configuration"`
}

func (s *CmdSource) GetId() string {
	return "cmd"
}

func (s *CmdSource) GetLoad() (int, error) {
	timeout := s.Config.Timeout
	if timeout <= 0 {
		timeout = defaultCmdTimeout
	}
	result, err := util.SafeCmdExecution(s.Config.Exec, s.Config.Args, timeout)
	if err != nil {
		return 0, fmt.Errorf("load cmd: %w", err)
	}

	value, err := strconv.Atoi(result)
	if err != nil {
		return 0, fmt.Errorf("load cmd: unable to read int from output of %s: %w", s.Config.Exec, err)
	}
	return value, nil
}
