package load

import (
	"context"
	"time"

	"github.com/markusressel/fps2go/internal/ui"
)

const defaultPollingRate = time.Second

// Monitor polls a Source and reports every change of its value
type Monitor interface {
	Run(ctx context.Context) error
}

type monitor struct {
	source      Source
	pollingRate time.Duration
	onChange    func()

	last    int
	hasLast bool
}

func NewMonitor(source Source, pollingRate time.Duration, onChange func()) Monitor {
	if pollingRate <= 0 {
		pollingRate = defaultPollingRate
	}
	return &monitor{
		source:      source,
		pollingRate: pollingRate,
		onChange:    onChange,
	}
}

func (m *monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.pollingRate)
	defer ticker.Stop()

	m.poll()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.poll()
		}
	}
}

func (m *monitor) poll() {
	value, err := m.source.GetLoad()
	if err != nil {
		ui.Warning("Unable to read load from source %s: %v", m.source.GetId(), err)
		return
	}

	changed := m.hasLast && value != m.last
	m.last = value
	m.hasLast = true
	if changed {
		ui.Debug("Load of source %s changed to %d", m.source.GetId(), value)
		m.onChange()
	}
}
