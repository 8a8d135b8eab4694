package load

import (
	"fmt"

	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/util"
)

// FileSource reads the load from a file containing a single integer
type FileSource struct {
	Config configuration.FileLoadConfig `json:"configuration"`
}

func (s *FileSource) GetId() string {
	return "file"
}

func (s *FileSource) GetLoad() (int, error) {
	value, err := util.ReadIntFromFile(s.Config.Path)
	if err != nil {
		return 0, fmt.Errorf("load file %s: %w", s.Config.Path, err)
	}
	return value, nil
}
