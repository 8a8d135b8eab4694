package load

import (
	"fmt"

	"github.com/markusressel/fps2go/internal/configuration"
	"github.com/markusressel/fps2go/internal/sessions"
)

// Source provides the current load of the host, i.e. the number of connected units
type Source interface {
	GetId() string

	// GetLoad returns the current load
	GetLoad() (int, error)
}

func NewSource(config configuration.LoadSourceConfig, tracker *sessions.Tracker) (Source, error) {
	if config.Sessions != nil {
		if tracker == nil {
			return nil, fmt.Errorf("sessions load source requires a session tracker")
		}
		return &SessionSource{
			Tracker:          tracker,
			IgnorePrivileged: config.Sessions.IgnorePrivileged,
		}, nil
	}

	if config.File != nil {
		return &FileSource{
			Config: *config.File,
		}, nil
	}

	if config.Cmd != nil {
		return &CmdSource{
			Config: *config.Cmd,
		}, nil
	}

	return nil, fmt.Errorf("no matching load source type")
}

// IsPolled returns true if the given source has to be polled to detect changes
func IsPolled(source Source) bool {
	_, isSessions := source.(*SessionSource)
	return !isSessions
}
