package sessions

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_JoinAndLeave(t *testing.T) {
	// GIVEN
	tracker := NewTracker()

	// WHEN
	isNew, err := tracker.Join(Session{Id: "steve", Name: "Steve"})

	// THEN
	assert.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, 1, tracker.Count())

	// WHEN
	err = tracker.Leave("steve")

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 0, tracker.Count())
}

func TestTracker_JoinWithoutId(t *testing.T) {
	// GIVEN
	tracker := NewTracker()

	// WHEN
	_, err := tracker.Join(Session{Name: "nobody"})

	// THEN
	assert.ErrorIs(t, err, ErrMissingId)
	assert.Equal(t, 0, tracker.Count())
}

func TestTracker_LeaveUnknown(t *testing.T) {
	// GIVEN
	tracker := NewTracker()

	// WHEN
	err := tracker.Leave("ghost")

	// THEN
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTracker_RejoinKeepsInboxAndJoinTime(t *testing.T) {
	// GIVEN
	tracker := NewTracker()
	_, _ = tracker.Join(Session{Id: "alex"})
	original, _ := tracker.Get("alex")
	require.NoError(t, tracker.Deliver("alex", Message{Key: "limit.changed", Text: "hello"}))

	// WHEN
	isNew, err := tracker.Join(Session{Id: "alex", Privileged: true})

	// THEN
	assert.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, 1, tracker.Count())
	session, _ := tracker.Get("alex")
	assert.True(t, session.Privileged)
	assert.Equal(t, original.JoinedAt, session.JoinedAt)
	inbox, _ := tracker.Inbox("alex")
	assert.Len(t, inbox, 1)
}

func TestTracker_ListIsSorted(t *testing.T) {
	// GIVEN
	tracker := NewTracker()
	_, _ = tracker.Join(Session{Id: "c"})
	_, _ = tracker.Join(Session{Id: "a", Privileged: true})
	_, _ = tracker.Join(Session{Id: "b"})

	// WHEN
	all := tracker.List()
	privileged := tracker.Privileged()

	// THEN
	assert.Equal(t, []string{"a", "b", "c"}, []string{all[0].Id, all[1].Id, all[2].Id})
	assert.Len(t, privileged, 1)
	assert.Equal(t, "a", privileged[0].Id)
	assert.Equal(t, 2, tracker.CountUnprivileged())
}

func TestTracker_InboxIsBounded(t *testing.T) {
	// GIVEN
	tracker := NewTracker()
	_, _ = tracker.Join(Session{Id: "admin", Privileged: true})

	// WHEN
	for i := 0; i < MaxInboxSize+10; i++ {
		_ = tracker.Deliver("admin", Message{Text: fmt.Sprintf("%d", i)})
	}

	// THEN
	inbox, err := tracker.Inbox("admin")
	assert.NoError(t, err)
	assert.Len(t, inbox, MaxInboxSize)
	assert.Equal(t, "10", inbox[0].Text)
	assert.Equal(t, fmt.Sprintf("%d", MaxInboxSize+9), inbox[len(inbox)-1].Text)
}

func TestTracker_DeliverToUnknown(t *testing.T) {
	// GIVEN
	tracker := NewTracker()

	// WHEN
	err := tracker.Deliver("ghost", Message{Text: "boo"})

	// THEN
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTracker_ConcurrentJoins(t *testing.T) {
	// GIVEN
	tracker := NewTracker()
	wg := sync.WaitGroup{}

	// WHEN
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = tracker.Join(Session{Id: fmt.Sprintf("player-%d", i)})
		}(i)
	}
	wg.Wait()

	// THEN
	assert.Equal(t, 100, tracker.Count())
}

func TestTracker_DeliverDuringRejoinKeepsEveryMessage(t *testing.T) {
	// GIVEN
	tracker := NewTracker()
	_, err := tracker.Join(Session{Id: "a", Name: "Alice", Privileged: true})
	require.NoError(t, err)
	messageCount := MaxInboxSize - 10

	// WHEN
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < messageCount; i++ {
			assert.NoError(t, tracker.Deliver("a", Message{Key: "test", Text: fmt.Sprintf("%d", i)}))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < messageCount; i++ {
			_, err := tracker.Join(Session{Id: "a", Name: fmt.Sprintf("Alice%d", i), Privileged: true})
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	// THEN
	inbox, err := tracker.Inbox("a")
	require.NoError(t, err)
	require.Len(t, inbox, messageCount)
	for i, message := range inbox {
		assert.Equal(t, fmt.Sprintf("%d", i), message.Text)
	}
	session, ok := tracker.Get("a")
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("Alice%d", messageCount-1), session.Name)
}

func TestTracker_InboxCopyIsNotChangedByRejoin(t *testing.T) {
	// GIVEN
	tracker := NewTracker()
	_, _ = tracker.Join(Session{Id: "a"})
	require.NoError(t, tracker.Deliver("a", Message{Text: "first"}))
	before, err := tracker.Inbox("a")
	require.NoError(t, err)

	// WHEN
	_, _ = tracker.Join(Session{Id: "a", Name: "Alice"})
	require.NoError(t, tracker.Deliver("a", Message{Text: "second"}))

	// THEN
	after, err := tracker.Inbox("a")
	require.NoError(t, err)
	require.Len(t, before, 1)
	require.Len(t, after, 2)
	assert.Equal(t, "first", after[0].Text)
	assert.Equal(t, "second", after[1].Text)
}
