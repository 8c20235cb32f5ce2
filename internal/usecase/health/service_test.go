package health

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockPinger{}, &mockPinger{})
	if err := svc.Check(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheck_NilCountersSkipped(t *testing.T) {
	svc := New(&mockPinger{}, nil)
	if err := svc.Check(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheck_DatabaseFailure(t *testing.T) {
	boom := errors.New("locked")
	svc := New(&mockPinger{err: boom}, &mockPinger{})

	err := svc.Check(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "database:") {
		t.Errorf("error not attributed to database: %v", err)
	}
}

func TestCheck_CounterStoreFailure(t *testing.T) {
	boom := errors.New("down")
	svc := New(&mockPinger{}, &mockPinger{err: boom})

	err := svc.Check(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "counter store:") {
		t.Errorf("error not attributed to counter store: %v", err)
	}
}
