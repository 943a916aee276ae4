package services

import (
	"sync"
	"testing"

	"sabor-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFeed captures published snapshots.
type recordingFeed struct {
	mu     sync.Mutex
	topics []string
}

func (f *recordingFeed) Publish(topic string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)
}

func testTable(id uint, number int, occupied bool) *entity.Table {
	t := &entity.Table{TableNumber: number, Occupied: occupied}
	t.ID = id
	return t
}

func TestTableService_SelectFreeTable(t *testing.T) {
	feed := &recordingFeed{}
	svc := NewTableService(newFakeTables(testTable(1, 1, false)), feed)

	selected, err := svc.Select(1)
	require.NoError(t, err)
	assert.True(t, selected.Occupied)
	assert.Contains(t, feed.topics, TopicTables)
}

func TestTableService_SelectOccupiedTableFails(t *testing.T) {
	svc := NewTableService(newFakeTables(testTable(1, 1, true)), nil)

	_, err := svc.Select(1)
	assert.ErrorIs(t, err, ErrTableOccupied)
}

func TestTableService_SelectUnknownTable(t *testing.T) {
	svc := NewTableService(newFakeTables(), nil)

	_, err := svc.Select(42)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestTableService_ReleaseIsIdempotent(t *testing.T) {
	tables := newFakeTables(testTable(1, 1, true))
	svc := NewTableService(tables, nil)

	require.NoError(t, svc.Release(1))
	require.NoError(t, svc.Release(1))

	freed, err := tables.FindByID(1)
	require.NoError(t, err)
	assert.False(t, freed.Occupied)
}

func TestTableService_QRCode(t *testing.T) {
	svc := NewTableService(newFakeTables(testTable(3, 3, false)), nil)

	png, err := svc.QRCode(3, "http://localhost:8000")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = svc.QRCode(99, "http://localhost:8000")
	assert.ErrorIs(t, err, ErrTableNotFound)
}
