package onboarding

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRegistry_PutGetDelete(t *testing.T) {
	r := NewRegistry(time.Hour)
	sess := &Session{ID: uuid.New(), CreatedAt: time.Now()}

	r.Put(sess)
	got, ok := r.Get(sess.ID)
	if !ok {
		t.Fatal("expected session to be found")
	}
	if got.ID != sess.ID {
		t.Errorf("expected session %s, got %s", sess.ID, got.ID)
	}

	r.Delete(sess.ID)
	if _, ok := r.Get(sess.ID); ok {
		t.Error("expected session to be gone after delete")
	}
}

func TestRegistry_GetUnknownID(t *testing.T) {
	r := NewRegistry(time.Hour)
	if _, ok := r.Get(uuid.New()); ok {
		t.Error("expected miss for unknown session id")
	}
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	r := NewRegistry(time.Hour)
	a := &Session{ID: uuid.New(), CreatedAt: time.Now()}
	b := &Session{ID: uuid.New(), CreatedAt: time.Now()}
	r.Put(a)
	r.Put(b)

	a.Organisation.Name = "Sunrise Care Group"

	got, _ := r.Get(b.ID)
	if got.Organisation.Name != "" {
		t.Errorf("expected session b to be untouched, got name %q", got.Organisation.Name)
	}
}

func TestRegistry_SweepDropsOnlyExpired(t *testing.T) {
	r := NewRegistry(time.Hour)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return base }

	stale := &Session{ID: uuid.New(), CreatedAt: base.Add(-2 * time.Hour)}
	fresh := &Session{ID: uuid.New(), CreatedAt: base.Add(-10 * time.Minute)}
	r.Put(stale)
	r.Put(fresh)

	if n := r.Sweep(); n != 1 {
		t.Errorf("expected 1 swept session, got %d", n)
	}
	if _, ok := r.Get(stale.ID); ok {
		t.Error("expected stale session to be swept")
	}
	if _, ok := r.Get(fresh.ID); !ok {
		t.Error("expected fresh session to survive sweep")
	}
}
