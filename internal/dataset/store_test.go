package dataset

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendoriq/internal/models"
)

func rec(supplier string, net float64) models.Record {
	r := models.Record{Supplier: supplier, Net: net}
	return r
}

func TestStoreAppendEqualsReplaceOfUnion(t *testing.T) {
	a := &models.Dataset{
		Records:      []models.Record{rec("Tata Steel Ltd", 100), rec("Siemens Ltd", 200)},
		ExtraColumns: []string{"remarks"},
	}
	b := &models.Dataset{
		Records:      []models.Record{rec("Bosch India", 300)},
		ExtraColumns: []string{"remarks", "plant"},
	}

	appended := NewStore()
	appended.Append(a)
	appended.Append(b)

	replaced := NewStore()
	replaced.Replace(&models.Dataset{
		Records:      append(append([]models.Record(nil), a.Records...), b.Records...),
		ExtraColumns: []string{"remarks", "plant"},
	})

	assert.Equal(t, replaced.Snapshot(), appended.Snapshot())
}

func TestStoreAppendPreservesOrder(t *testing.T) {
	s := NewStore()
	s.Append(&models.Dataset{Records: []models.Record{rec("A", 1), rec("B", 2)}})
	s.Append(&models.Dataset{Records: []models.Record{rec("C", 3)}})

	snap := s.Snapshot()
	require.Equal(t, 3, snap.Len())
	assert.Equal(t, "A", snap.Records[0].Supplier)
	assert.Equal(t, "B", snap.Records[1].Supplier)
	assert.Equal(t, "C", snap.Records[2].Supplier)
}

func TestStoreAppendCleansRecords(t *testing.T) {
	s := NewStore()
	s.Append(&models.Dataset{Records: []models.Record{rec("  Tata Steel Ltd ", 100)}})
	assert.Equal(t, "Tata Steel Ltd", s.Snapshot().Records[0].Supplier)
}

func TestStoreReplaceDiscardsPrevious(t *testing.T) {
	s := NewStore()
	s.Append(&models.Dataset{Records: []models.Record{rec("A", 1), rec("B", 2)}, ExtraColumns: []string{"old"}})
	s.Replace(&models.Dataset{Records: []models.Record{rec("C", 3)}, ExtraColumns: []string{"new"}})

	snap := s.Snapshot()
	require.Equal(t, 1, snap.Len())
	assert.Equal(t, "C", snap.Records[0].Supplier)
	assert.Equal(t, []string{"new"}, snap.ExtraColumns)
}

func TestStoreClear(t *testing.T) {
	s := NewStore()
	s.Append(&models.Dataset{Records: []models.Record{rec("A", 1)}, ExtraColumns: []string{"x"}})
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Snapshot().ExtraColumns)
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore()
	s.Append(&models.Dataset{Records: []models.Record{rec("A", 1)}})

	snap := s.Snapshot()
	snap.Records[0].Supplier = "mutated"
	snap.Records = append(snap.Records, rec("extra", 9))

	fresh := s.Snapshot()
	require.Equal(t, 1, fresh.Len())
	assert.Equal(t, "A", fresh.Records[0].Supplier)
}

func TestStoreExtraColumnMergeDedupes(t *testing.T) {
	s := NewStore()
	s.Append(&models.Dataset{ExtraColumns: []string{"remarks", "plant"}})
	s.Append(&models.Dataset{ExtraColumns: []string{"plant", "zone"}})
	assert.Equal(t, []string{"remarks", "plant", "zone"}, s.Snapshot().ExtraColumns)
}

func TestSessionsGetStable(t *testing.T) {
	sessions := NewSessions()
	id := uuid.New()

	first := sessions.Get(id)
	first.Append(&models.Dataset{Records: []models.Record{rec("A", 1)}})

	second := sessions.Get(id)
	assert.Same(t, first, second)
	assert.Equal(t, 1, second.Len())
	assert.Equal(t, 1, sessions.Count())
}

func TestSessionsIsolatedPerID(t *testing.T) {
	sessions := NewSessions()
	a := sessions.Get(uuid.New())
	b := sessions.Get(uuid.New())

	a.Append(&models.Dataset{Records: []models.Record{rec("A", 1)}})
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 2, sessions.Count())
}
