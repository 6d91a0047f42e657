package memory

import (
	"testing"
	"time"

	"github.com/nogueira-gui/conecta-apiserver/internal/domain"
	"github.com/nogueira-gui/conecta-apiserver/internal/domain/entity"
)

func newTestSession(id string, updatedAt time.Time) *entity.ChatSession {
	return &entity.ChatSession{
		ID:        id,
		UserID:    "user-1",
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func TestSessionStoreCreateAndGet(t *testing.T) {
	store := NewSessionStore()
	defer store.Close()

	session := newTestSession("s-1", time.Now())
	if err := store.Create(session); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Create(session); !domain.IsAlreadyExists(err) {
		t.Errorf("duplicate Create err = %v, want already exists", err)
	}

	got, err := store.Get("s-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	// Snapshots must not alias the live session.
	got.UserID = "someone-else"
	again, _ := store.Get("s-1")
	if again.UserID != "user-1" {
		t.Error("Get returned the live session instead of a copy")
	}

	if _, err := store.Get("missing"); !domain.IsNotFound(err) {
		t.Errorf("unknown Get err = %v, want not found", err)
	}
}

func TestSessionStoreUpdateAndDelete(t *testing.T) {
	store := NewSessionStore()
	defer store.Close()

	if err := store.Create(newTestSession("s-1", time.Now())); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := store.Update("s-1", func(s *entity.ChatSession) error {
		s.Busy = true
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got, _ := store.Get("s-1"); !got.Busy {
		t.Error("Update mutation not visible")
	}

	if err := store.Update("missing", func(*entity.ChatSession) error { return nil }); !domain.IsNotFound(err) {
		t.Errorf("unknown Update err = %v, want not found", err)
	}

	if err := store.Delete("s-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete("s-1"); err != nil {
		t.Errorf("repeated Delete err = %v, want nil", err)
	}
	if _, err := store.Get("s-1"); !domain.IsNotFound(err) {
		t.Errorf("deleted session Get err = %v, want not found", err)
	}
}

func TestSessionStoreSweepExpiresIdleSessions(t *testing.T) {
	store := NewSessionStore(
		WithSessionTTL(20*time.Millisecond),
		WithSweepInterval(10*time.Millisecond),
	)
	defer store.Close()

	evicted := make(chan string, 4)
	store.OnEvict(func(sessionID string) { evicted <- sessionID })

	stale := newTestSession("stale", time.Now().Add(-time.Minute))
	fresh := newTestSession("fresh", time.Now().Add(time.Hour))
	if err := store.Create(stale); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Create(fresh); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	select {
	case id := <-evicted:
		if id != "stale" {
			t.Errorf("evicted session = %q, want stale", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("idle session was never swept")
	}

	if _, err := store.Get("stale"); !domain.IsNotFound(err) {
		t.Errorf("swept session Get err = %v, want not found", err)
	}
	if _, err := store.Get("fresh"); err != nil {
		t.Errorf("fresh session swept too, err = %v", err)
	}
}

func TestSessionStoreSweepSkipsBusySessions(t *testing.T) {
	store := NewSessionStore(
		WithSessionTTL(10*time.Millisecond),
		WithSweepInterval(5*time.Millisecond),
	)
	defer store.Close()

	busy := newTestSession("busy", time.Now().Add(-time.Minute))
	busy.Busy = true
	if err := store.Create(busy); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	time.Sleep(50 * time.Millisecond)
	if _, err := store.Get("busy"); err != nil {
		t.Errorf("busy session was swept, err = %v", err)
	}
}
