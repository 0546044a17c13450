package candidate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mdsofi1/AI-Interview-Assistant/internal/store"
	"github.com/mdsofi1/AI-Interview-Assistant/pkg/model"
	"go.uber.org/zap"
)

// Archive is an optional durable sink for completed records, on top of the
// KV slot. The in-memory list stays the source of truth for reads.
type Archive interface {
	SaveRecord(ctx context.Context, rec model.CandidateRecord) error
	ListRecords(ctx context.Context) ([]model.CandidateRecord, error)
}

// Store holds completed interview records for the dashboard: most recent
// first, append-only, seeded with fixed examples. Non-seed records are
// written through to the KV slot on every Add.
type Store struct {
	mu      sync.RWMutex
	records []model.CandidateRecord
	seedIDs map[string]bool

	kv      store.KV
	archive Archive
	logger  *zap.Logger
}

func NewStore(kv store.KV, logger *zap.Logger) *Store {
	return &Store{
		kv:      kv,
		seedIDs: make(map[string]bool),
		logger:  logger,
	}
}

// WithArchive attaches a durable archive. Must be called before Load.
func (s *Store) WithArchive(a Archive) *Store {
	s.archive = a
	return s
}

// Load seeds the store and merges any persisted records: seeds first, then
// saved records in their stored order (newest first). Persistence failures
// leave the store seeded only.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = seedRecords()
	for _, r := range s.records {
		s.seedIDs[r.ID] = true
	}

	saved, err := s.loadPersisted(ctx)
	if err != nil {
		s.logger.Warn("candidate store: could not load persisted records", zap.Error(err))
		return nil
	}
	seen := make(map[string]bool, len(s.records))
	for _, r := range s.records {
		seen[r.ID] = true
	}
	for _, r := range saved {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		s.records = append(s.records, r)
	}
	return nil
}

func (s *Store) loadPersisted(ctx context.Context) ([]model.CandidateRecord, error) {
	var out []model.CandidateRecord

	raw, err := s.kv.Get(ctx, store.CandidatesKey)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
	case err != nil:
		return nil, fmt.Errorf("read candidates slot: %w", err)
	default:
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return nil, fmt.Errorf("decode candidates slot: %w", err)
		}
	}

	if s.archive != nil {
		archived, err := s.archive.ListRecords(ctx)
		if err != nil {
			s.logger.Warn("candidate store: archive read failed", zap.Error(err))
			return out, nil
		}
		seen := make(map[string]bool, len(out))
		for _, r := range out {
			seen[r.ID] = true
		}
		for _, r := range archived {
			if !seen[r.ID] {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

// Add appends a finalized record at the front and persists the non-seed
// records. Persistence failures only cost durability.
func (s *Store) Add(ctx context.Context, rec model.CandidateRecord) {
	s.mu.Lock()
	s.records = append([]model.CandidateRecord{rec}, s.records...)
	persisted := make([]model.CandidateRecord, 0, len(s.records))
	for _, r := range s.records {
		if !s.seedIDs[r.ID] {
			persisted = append(persisted, r)
		}
	}
	s.mu.Unlock()

	data, err := json.Marshal(persisted)
	if err != nil {
		s.logger.Error("candidate store: encode records", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, store.CandidatesKey, string(data)); err != nil {
		s.logger.Warn("candidate store: persist failed", zap.String("record_id", rec.ID), zap.Error(err))
	}

	if s.archive != nil {
		if err := s.archive.SaveRecord(ctx, rec); err != nil {
			s.logger.Warn("candidate store: archive write failed", zap.String("record_id", rec.ID), zap.Error(err))
		}
	}
}

// List filters case-insensitively on name or email and sorts by the given
// key: score (descending), name (ascending) or date (descending). An
// unrecognized key keeps insertion order.
func (s *Store) List(search, sortBy string) []model.CandidateRecord {
	s.mu.RLock()
	out := make([]model.CandidateRecord, 0, len(s.records))
	needle := strings.ToLower(search)
	for _, r := range s.records {
		if needle == "" ||
			strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Email), needle) {
			out = append(out, r)
		}
	}
	s.mu.RUnlock()

	switch sortBy {
	case model.SortByScore:
		sort.SliceStable(out, func(i, j int) bool { return out[i].TotalScore > out[j].TotalScore })
	case model.SortByName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case model.SortByDate:
		sort.SliceStable(out, func(i, j int) bool { return out[i].InterviewDate.After(out[j].InterviewDate) })
	}
	return out
}

// Get returns one record by id.
func (s *Store) Get(id string) (model.CandidateRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.CandidateRecord{}, false
}
