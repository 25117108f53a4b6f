package task

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveChanges(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 30, 0, 123456789, time.UTC)

	t.Run("done true sets done_at", func(t *testing.T) {
		c := DeriveChanges(None[string](), Some(true), now)

		done, ok := c.Done.Get()
		require.True(t, ok)
		assert.True(t, done)

		doneAt, ok := c.DoneAt.Get()
		require.True(t, ok)
		require.NotNil(t, doneAt)
		assert.Equal(t, now, *doneAt)
		assert.False(t, c.Name.IsSet())
	})

	t.Run("done false clears done_at", func(t *testing.T) {
		c := DeriveChanges(None[string](), Some(false), now)

		doneAt, ok := c.DoneAt.Get()
		require.True(t, ok, "清空也属于已提供")
		assert.Nil(t, doneAt)
	})

	t.Run("done absent leaves done_at untouched", func(t *testing.T) {
		c := DeriveChanges(Some("renamed"), None[bool](), now)

		assert.False(t, c.Done.IsSet())
		assert.False(t, c.DoneAt.IsSet())
		name, ok := c.Name.Get()
		require.True(t, ok)
		assert.Equal(t, "renamed", name)
	})

	t.Run("nothing supplied", func(t *testing.T) {
		c := DeriveChanges(None[string](), None[bool](), now)
		assert.True(t, c.Empty())
	})
}

func TestTask_ApplyKeepsInvariant(t *testing.T) {
	now := time.Now().UTC()
	item := &Task{ID: 1, Name: "X", CreatedAt: now}

	item.Apply(DeriveChanges(None[string](), Some(true), now))
	assert.True(t, item.Done)
	assert.NotNil(t, item.DoneAt)
	assert.True(t, item.Consistent())

	item.Apply(DeriveChanges(Some("Y"), None[bool](), now))
	assert.Equal(t, "Y", item.Name)
	assert.True(t, item.Done, "只改名时不影响完成状态")
	assert.NotNil(t, item.DoneAt)

	item.Apply(DeriveChanges(None[string](), Some(false), now))
	assert.False(t, item.Done)
	assert.Nil(t, item.DoneAt)
	assert.True(t, item.Consistent())
}

func TestTask_ApplyCopiesDoneAt(t *testing.T) {
	at := time.Now()
	item := &Task{}
	item.Apply(Changes{Done: Some(true), DoneAt: Some(&at)})

	at = at.Add(time.Hour)
	assert.NotEqual(t, at, *item.DoneAt)
}

func TestOptional_FromPtr(t *testing.T) {
	assert.False(t, FromPtr[bool](nil).IsSet())

	f := false
	v, ok := FromPtr(&f).Get()
	assert.True(t, ok)
	assert.False(t, v)
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		input    string
		expected Selector
		wantErr  bool
	}{
		{"", All, false},
		{"all", All, false},
		{"DONE", Done, false},
		{"not_done", NotDone, false},
		{"not-done", NotDone, false},
		{"maybe", All, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ParseSelector(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidSelector))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestSelector_Matches(t *testing.T) {
	done := &Task{Done: true}
	open := &Task{}

	assert.True(t, All.Matches(done))
	assert.True(t, All.Matches(open))
	assert.True(t, Done.Matches(done))
	assert.False(t, Done.Matches(open))
	assert.True(t, NotDone.Matches(open))
	assert.False(t, NotDone.Matches(done))
	assert.False(t, Selector(7).Valid())
}

func TestConnectionError(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&ConnectionError{Reason: "Error connecting to db, connection refused", Err: cause})

	assert.Equal(t, "Error connecting to db, connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))

	var connErr *ConnectionError
	assert.True(t, errors.As(err, &connErr))
}
