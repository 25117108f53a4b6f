package rpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskd/backend/internal/domain/task"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestToWire_RoundTrip(t *testing.T) {
	createdAt := time.Date(2023, 11, 14, 22, 13, 20, 123456789, time.UTC)
	doneAt := createdAt.Add(90*time.Minute + 987*time.Nanosecond)

	tests := []struct {
		name string
		item *task.Task
	}{
		{
			name: "not done",
			item: &task.Task{ID: 7, Name: "write docs", CreatedAt: createdAt},
		},
		{
			name: "done with sub-second precision",
			item: &task.Task{ID: 8, Name: "ship", CreatedAt: createdAt, Done: true, DoneAt: &doneAt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ToWire(tt.item)
			require.NotNil(t, w)
			assert.Equal(t, tt.item.ID, w.Id)
			assert.Equal(t, tt.item.CreatedAt.Unix(), w.CreatedAt.GetSeconds())
			assert.Equal(t, int32(tt.item.CreatedAt.Nanosecond()), w.CreatedAt.GetNanos())

			back := FromWire(w)
			assert.Equal(t, tt.item, back)
		})
	}
}

func TestToWire_DoneAtAbsentIsNil(t *testing.T) {
	w := ToWire(&task.Task{ID: 1, CreatedAt: time.Unix(0, 0).UTC()})
	assert.Nil(t, w.DoneAt, "未完成任务不应带纪元时间")
	assert.NotNil(t, w.CreatedAt)
}

func TestToWire_Nil(t *testing.T) {
	assert.Nil(t, ToWire(nil))
	assert.Nil(t, FromWire(nil))
}

func TestToWireList_KeepsOrder(t *testing.T) {
	now := time.Now().UTC()
	items := []*task.Task{
		{ID: 3, Name: "c", CreatedAt: now},
		{ID: 1, Name: "a", CreatedAt: now},
	}

	out := ToWireList(items)
	require.Len(t, out, 2)
	assert.Equal(t, int64(3), out[0].Id)
	assert.Equal(t, int64(1), out[1].Id)

	assert.NotNil(t, ToWireList(nil))
}

func TestErrorPayload(t *testing.T) {
	assert.Equal(t, "DATABASE_URL must be set", ErrorPayload("DATABASE_URL must be set").GetMessage())
	var e *Error
	assert.Equal(t, "", e.GetMessage())
}

func TestProto_UpdateRequestPresence(t *testing.T) {
	data, err := proto.Marshal(&UpdateRequest{Id: 4, Done: wrapperspb.Bool(false)})
	require.NoError(t, err)

	decoded := &UpdateRequest{}
	require.NoError(t, proto.Unmarshal(data, decoded))
	assert.Equal(t, int64(4), decoded.GetId())
	assert.Nil(t, decoded.GetName(), "未提供的字段保持为空")
	require.NotNil(t, decoded.GetDone(), "false 也属于已提供")
	assert.False(t, decoded.GetDone().GetValue())
}

func TestProto_TaskTimestamps(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 600, time.UTC)
	data, err := proto.Marshal(ToWire(&task.Task{ID: 2, Name: "n", CreatedAt: createdAt}))
	require.NoError(t, err)

	decoded := &Task{}
	require.NoError(t, proto.Unmarshal(data, decoded))
	require.NotNil(t, decoded.GetCreatedAt())
	assert.Equal(t, createdAt, decoded.GetCreatedAt().AsTime())
	assert.Nil(t, decoded.GetDoneAt())
}

func TestListOptionKind_Names(t *testing.T) {
	assert.Equal(t, "NOT_DONE", ListOptionKind_NOT_DONE.String())
	assert.Equal(t, int32(1), ListOptionKind_value["DONE"])
	assert.Equal(t, task.Done, selectorFromWire(ListOptionKind_DONE))
}
