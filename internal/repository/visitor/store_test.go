package visitor

import (
	"context"
	"testing"
	"time"

	"github.com/ngdp/geoportal/internal/db/redis"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	counters map[string]int64
	expired  map[string]time.Duration
	incrErr  error
	getErr   error
}

func newMockStore() *mockStore {
	return &mockStore{
		counters: make(map[string]int64),
		expired:  make(map[string]time.Duration),
	}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.counters[key]
	if !ok {
		return nil, redis.ErrKeyNotFound
	}
	return []byte(itoa(v)), nil
}

func (m *mockStore) IncrBy(_ context.Context, key string, val int64) error {
	if m.incrErr != nil {
		return m.incrErr
	}
	m.counters[key] += val
	return nil
}

func (m *mockStore) Expire(_ context.Context, key string, ttl time.Duration, _ bool) error {
	m.expired[key] = ttl
	return nil
}

func itoa(v int64) string {
	b := []byte{}
	if v == 0 {
		return "0"
	}
	for v > 0 {
		b = append([]byte{byte('0' + v%10)}, b...)
		v /= 10
	}
	return string(b)
}

func newTestStore(ms *mockStore) *Store {
	s := New(ms)
	s.now = func() time.Time {
		return time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestTrack_IncrementsTotalAndToday(t *testing.T) {
	ms := newMockStore()
	s := newTestStore(ms)

	for i := 0; i < 3; i++ {
		if err := s.Track(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := ms.counters[totalKey]; got != 3 {
		t.Errorf("total = %d, want 3", got)
	}
	if got := ms.counters[dayPrefix+"2026-08-27"]; got != 3 {
		t.Errorf("today = %d, want 3", got)
	}
	if _, ok := ms.expired[dayPrefix+"2026-08-27"]; !ok {
		t.Error("expected TTL set on daily key")
	}
}

func TestCounters_MissingKeysAreZero(t *testing.T) {
	s := newTestStore(newMockStore())

	total, err := s.Total(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	today, err := s.Today(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 0 || today != 0 {
		t.Errorf("expected zeros, got total=%d today=%d", total, today)
	}
}

func TestToday_ReadsCurrentDayKey(t *testing.T) {
	ms := newMockStore()
	ms.counters[dayPrefix+"2026-08-27"] = 41
	ms.counters[dayPrefix+"2026-08-26"] = 999
	s := newTestStore(ms)

	today, err := s.Today(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if today != 41 {
		t.Errorf("today = %d, want 41", today)
	}
}
