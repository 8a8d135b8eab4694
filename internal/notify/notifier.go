package notify

import (
	"errors"
	"sync/atomic"

	"github.com/markusressel/fps2go/internal/sessions"
	"github.com/markusressel/fps2go/internal/ui"
)

// Audience selects the recipients of a notification
type Audience string

// AudiencePrivileged addresses administrators and other elevated roles only
const AudiencePrivileged Audience = "privileged"

var ErrAudienceNotAllowed = errors.New("notifications may only be addressed to the privileged audience")

type Notifier interface {
	// Notify renders the message for the given key and delivers it to the audience
	Notify(audience Audience, key string, params Params) error
}

// SessionNotifier delivers notifications to the inbox of every privileged session,
// rendered in the language of that session.
type SessionNotifier struct {
	catalog *Catalog
	tracker *sessions.Tracker
	desktop bool

	sent atomic.Int64
}

func NewSessionNotifier(catalog *Catalog, tracker *sessions.Tracker, desktop bool) *SessionNotifier {
	return &SessionNotifier{
		catalog: catalog,
		tracker: tracker,
		desktop: desktop,
	}
}

func (n *SessionNotifier) Notify(audience Audience, key string, params Params) error {
	if audience != AudiencePrivileged {
		return ErrAudienceNotAllowed
	}
	n.sent.Add(1)

	for _, session := range n.tracker.Privileged() {
		message := sessions.Message{
			Key:  key,
			Text: n.catalog.Render(session.Language, key, params),
		}
		if err := n.tracker.Deliver(session.Id, message); err != nil {
			// the session left in the meantime
			ui.Debug("Unable to deliver notification to %s: %v", session.Id, err)
		}
	}

	text := n.catalog.Render(n.catalog.DefaultLanguage(), key, params)
	ui.Info("Notification (%s): %s", audience, text)
	if n.desktop {
		ui.NotifyInfo(ui.AppName, text)
	}
	return nil
}

// SentCount returns the number of notifications sent so far
func (n *SessionNotifier) SentCount() int64 {
	return n.sent.Load()
}
