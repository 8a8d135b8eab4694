package sessions

import (
	"errors"
	"strings"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"golang.org/x/exp/slices"
)

// MaxInboxSize is the number of messages kept per session
const MaxInboxSize = 50

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMissingId       = errors.New("missing session id")
)

// Session is a single connected unit of the host, e.g. a player.
type Session struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	Language   string    `json:"language"`
	Privileged bool      `json:"privileged"`
	JoinedAt   time.Time `json:"joinedAt"`
}

type Message struct {
	Key  string    `json:"key"`
	Text string    `json:"text"`
	Time time.Time `json:"time"`
}

// entry lives as long as its session, a rejoin updates it in place
type entry struct {
	mu      sync.Mutex
	session Session
	inbox   []Message
}

func (e *entry) getSession() Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Tracker keeps track of all currently connected sessions
type Tracker struct {
	sessions cmap.ConcurrentMap[string, *entry]
}

func NewTracker() *Tracker {
	return &Tracker{
		sessions: cmap.New[*entry](),
	}
}

// Join registers the given session, replacing an existing session with the same id.
// Returns true if the session was not known before.
func (t *Tracker) Join(session Session) (bool, error) {
	if session.Id == "" {
		return false, ErrMissingId
	}
	if session.JoinedAt.IsZero() {
		session.JoinedAt = time.Now()
	}

	isNew := false
	t.sessions.Upsert(session.Id, nil, func(exist bool, old *entry, _ *entry) *entry {
		if !exist {
			isNew = true
			return &entry{session: session}
		}
		// a rejoin keeps the original join time and the inbox
		old.mu.Lock()
		defer old.mu.Unlock()
		session.JoinedAt = old.session.JoinedAt
		old.session = session
		return old
	})
	return isNew, nil
}

// Leave removes the session with the given id
func (t *Tracker) Leave(id string) error {
	if _, removed := t.sessions.Pop(id); !removed {
		return ErrSessionNotFound
	}
	return nil
}

// Count returns the number of connected sessions
func (t *Tracker) Count() int {
	return t.sessions.Count()
}

// CountUnprivileged returns the number of connected sessions without elevated role
func (t *Tracker) CountUnprivileged() int {
	count := 0
	for _, e := range t.sessions.Items() {
		if !e.getSession().Privileged {
			count++
		}
	}
	return count
}

func (t *Tracker) Get(id string) (Session, bool) {
	e, ok := t.sessions.Get(id)
	if !ok {
		return Session{}, false
	}
	return e.getSession(), true
}

// List returns all sessions ordered by id
func (t *Tracker) List() []Session {
	return t.filter(func(Session) bool { return true })
}

// Privileged returns all sessions with an elevated role, ordered by id
func (t *Tracker) Privileged() []Session {
	return t.filter(func(s Session) bool { return s.Privileged })
}

func (t *Tracker) filter(predicate func(Session) bool) []Session {
	result := []Session{}
	for _, e := range t.sessions.Items() {
		session := e.getSession()
		if predicate(session) {
			result = append(result, session)
		}
	}
	slices.SortFunc(result, func(a, b Session) int {
		return strings.Compare(a.Id, b.Id)
	})
	return result
}

// Deliver appends a message to the inbox of the given session
func (t *Tracker) Deliver(id string, message Message) error {
	e, ok := t.sessions.Get(id)
	if !ok {
		return ErrSessionNotFound
	}
	if message.Time.IsZero() {
		message.Time = time.Now()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.inbox = append(e.inbox, message)
	if len(e.inbox) > MaxInboxSize {
		e.inbox = e.inbox[len(e.inbox)-MaxInboxSize:]
	}
	return nil
}

// Inbox returns a copy of the messages delivered to the given session
func (t *Tracker) Inbox(id string) ([]Message, error) {
	e, ok := t.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.inbox), nil
}
