package storage

import (
	"testing"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Valid(t *testing.T) {
	tasks, err := decode([]byte(`[{"id":1,"title":"Alpha","status":"Todo"},{"id":2,"title":"Beta","status":"Done"}]`))
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{
		{ID: 1, Title: "Alpha", Status: domain.StatusTodo},
		{ID: 2, Title: "Beta", Status: domain.StatusDone},
	}, tasks)
}

func TestDecode_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"zero id", `[{"id":0,"title":"x","status":"Todo"}]`, "invalid id 0"},
		{"duplicate id", `[{"id":3,"title":"x","status":"Todo"},{"id":3,"title":"y","status":"Todo"}]`, "entry 1: duplicate id 3"},
		{"blank title", `[{"id":3,"title":" \t","status":"Todo"}]`, "empty title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := decode([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, tasks)
		})
	}
}

func TestDecode_BlankTitleWrapsSentinel(t *testing.T) {
	_, err := decode([]byte(`[{"id":1,"title":"","status":"Todo"}]`))
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
}

func TestMemoryStore_InvalidEntriesLoadEmpty(t *testing.T) {
	s := NewMemoryStoreWithData([]byte(`[{"id":1,"title":"a","status":"Todo"},{"id":1,"title":"b","status":"Todo"}]`), testLogger())

	tasks := s.Load()
	require.NotNil(t, tasks)
	assert.Empty(t, tasks)
}
