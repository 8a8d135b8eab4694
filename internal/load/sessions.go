package load

import "github.com/markusressel/fps2go/internal/sessions"

// SessionSource counts the sessions registered in the tracker.
// Changes are pushed by whoever calls Join/Leave, no polling is needed.
type SessionSource struct {
	Tracker          *sessions.Tracker
	IgnorePrivileged bool
}

func (s *SessionSource) GetId() string {
	return "sessions"
}

func (s *SessionSource) GetLoad() (int, error) {
	if s.IgnorePrivileged {
		return s.Tracker.CountUnprivileged(), nil
	}
	return s.Tracker.Count(), nil
}
