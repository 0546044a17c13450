package candidate

import (
	"context"
	"testing"
	"time"

	"github.com/mdsofi1/AI-Interview-Assistant/internal/store"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T, kv store.KV) *Store {
	t.Helper()
	s := NewStore(kv, zap.NewNop())
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestLoadSeedsOnly(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	records := s.List("", "")
	require.Len(t, records, 3)
	assert.Equal(t, "sample-1", records[0].ID)
	assert.Equal(t, "sample-2", records[1].ID)
	assert.Equal(t, "sample-3", records[2].ID)
}

func TestListFilterMatchesNameAndEmail(t *testing.T) {
	s := newTestStore(t, store.NewMemory())

	bySarah := s.List("sarah", model.SortByScore)
	require.Len(t, bySarah, 1)
	assert.Equal(t, "Sarah Wilson", bySarah[0].Name)

	byDomain := s.List("EXAMPLE.COM", model.SortByScore)
	assert.Len(t, byDomain, 3)

	none := s.List("nobody", model.SortByScore)
	assert.Empty(t, none)
}

func TestListSortKeys(t *testing.T) {
	s := newTestStore(t, store.NewMemory())

	byScore := s.List("", model.SortByScore)
	assert.Equal(t, []int{92, 85, 78}, scores(byScore))

	byName := s.List("", model.SortByName)
	assert.Equal(t, "John Doe", byName[0].Name)
	assert.Equal(t, "Mike Chen", byName[1].Name)
	assert.Equal(t, "Sarah Wilson", byName[2].Name)

	byDate := s.List("", model.SortByDate)
	assert.Equal(t, "sample-1", byDate[0].ID)
	assert.Equal(t, "sample-3", byDate[2].ID)

	unknown := s.List("", "bogus")
	assert.Equal(t, "sample-1", unknown[0].ID)
	assert.Equal(t, "sample-2", unknown[1].ID)
	assert.Equal(t, "sample-3", unknown[2].ID)
}

func TestAddPrependsAndPersists(t *testing.T) {
	kv := store.NewMemory()
	s := newTestStore(t, kv)
	ctx := context.Background()

	rec := model.CandidateRecord{
		ID:            "rec-1",
		Name:          "Ada Lovelace",
		Email:         "ada@example.com",
		InterviewDate: time.Now().UTC(),
		Status:        model.StatusCompleted,
		TotalScore:    77,
	}
	s.Add(ctx, rec)

	all := s.List("", "bogus")
	require.Len(t, all, 4)
	assert.Equal(t, "rec-1", all[0].ID)

	// a fresh store over the same KV sees seeds first, then the saved record
	s2 := newTestStore(t, kv)
	all2 := s2.List("", "bogus")
	require.Len(t, all2, 4)
	assert.Equal(t, "sample-1", all2[0].ID)
	assert.Equal(t, "rec-1", all2[3].ID)
}

func TestSeedsNeverPersisted(t *testing.T) {
	kv := store.NewMemory()
	s := newTestStore(t, kv)
	ctx := context.Background()

	_, err := kv.Get(ctx, store.CandidatesKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	s.Add(ctx, model.CandidateRecord{ID: "rec-1", Name: "Ada", TotalScore: 50})
	raw, err := kv.Get(ctx, store.CandidatesKey)
	require.NoError(t, err)
	assert.Contains(t, raw, "rec-1")
	assert.NotContains(t, raw, "sample-1")
}

func TestGet(t *testing.T) {
	s := newTestStore(t, store.NewMemory())

	rec, ok := s.Get("sample-2")
	require.True(t, ok)
	assert.Equal(t, "Sarah Wilson", rec.Name)
	assert.Equal(t, 92, rec.TotalScore)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestLoadSurvivesCorruptSlot(t *testing.T) {
	kv := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, store.CandidatesKey, "not json"))

	s := NewStore(kv, zap.NewNop())
	require.NoError(t, s.Load(ctx))
	assert.Len(t, s.List("", ""), 3)
}

func scores(records []model.CandidateRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.TotalScore
	}
	return out
}
