package session_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rodrigue/rangabot/internal/personality"
	"github.com/rodrigue/rangabot/internal/session"
)

func TestGetOrCreateDefaults(t *testing.T) {
	t.Parallel()

	store := session.NewStore(nil, 10)

	sess := store.GetOrCreate(42)
	if sess.Mode != personality.ModeDefault {
		t.Errorf("new session mode = %q, want %q", sess.Mode, personality.ModeDefault)
	}
	if len(sess.History) != 0 {
		t.Errorf("new session history length = %d, want 0", len(sess.History))
	}
}

func TestAppendTurnTruncation(t *testing.T) {
	t.Parallel()

	const maxHistory = 10
	store := session.NewStore(nil, maxHistory)

	// Append more turns than the window holds; the oldest must be evicted
	// and the newest always retained.
	const total = 12
	for i := 0; i < total; i++ {
		role := session.RoleUser
		if i%2 == 1 {
			role = session.RoleAssistant
		}
		store.AppendTurn(7, session.Turn{Role: role, Content: fmt.Sprintf("turn %d", i)})
	}

	history := store.History(7)
	if len(history) != maxHistory {
		t.Fatalf("history length = %d, want %d", len(history), maxHistory)
	}
	for i, turn := range history {
		want := fmt.Sprintf("turn %d", total-maxHistory+i)
		if turn.Content != want {
			t.Errorf("history[%d].Content = %q, want %q", i, turn.Content, want)
		}
	}
}

func TestSetModeClearsHistory(t *testing.T) {
	t.Parallel()

	store := session.NewStore(nil, 10)
	store.AppendTurn(1, session.Turn{Role: session.RoleUser, Content: "bonjour"})
	store.AppendTurn(1, session.Turn{Role: session.RoleAssistant, Content: "salut"})

	if err := store.SetMode(1, personality.ModeCoach); err != nil {
		t.Fatalf("SetMode returned error: %v", err)
	}

	sess := store.GetOrCreate(1)
	if sess.Mode != personality.ModeCoach {
		t.Errorf("mode = %q, want %q", sess.Mode, personality.ModeCoach)
	}
	if len(sess.History) != 0 {
		t.Errorf("history length after mode switch = %d, want 0", len(sess.History))
	}
}

func TestSetModeUnknown(t *testing.T) {
	t.Parallel()

	store := session.NewStore(nil, 10)
	err := store.SetMode(1, "pirate")
	if !errors.Is(err, personality.ErrUnknownMode) {
		t.Fatalf("SetMode(unknown) error = %v, want ErrUnknownMode", err)
	}

	// The rejected switch must not have touched the session.
	sess := store.GetOrCreate(1)
	if sess.Mode != personality.ModeDefault {
		t.Errorf("mode after rejected switch = %q, want %q", sess.Mode, personality.ModeDefault)
	}
}

func TestUserIsolation(t *testing.T) {
	t.Parallel()

	store := session.NewStore(nil, 10)
	store.AppendTurn(1, session.Turn{Role: session.RoleUser, Content: "user one"})
	if err := store.SetMode(2, personality.ModeAnime); err != nil {
		t.Fatalf("SetMode returned error: %v", err)
	}

	one := store.GetOrCreate(1)
	two := store.GetOrCreate(2)

	if one.Mode != personality.ModeDefault {
		t.Errorf("user 1 mode = %q, want %q", one.Mode, personality.ModeDefault)
	}
	if len(one.History) != 1 {
		t.Errorf("user 1 history length = %d, want 1", len(one.History))
	}
	if two.Mode != personality.ModeAnime {
		t.Errorf("user 2 mode = %q, want %q", two.Mode, personality.ModeAnime)
	}
	if len(two.History) != 0 {
		t.Errorf("user 2 history length = %d, want 0", len(two.History))
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	t.Parallel()

	store := session.NewStore(nil, 10)
	store.AppendTurn(1, session.Turn{Role: session.RoleUser, Content: "original"})

	sess := store.GetOrCreate(1)
	sess.History[0].Content = "mutated"

	if got := store.History(1)[0].Content; got != "original" {
		t.Errorf("store history content = %q, want %q (snapshot mutation leaked)", got, "original")
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	const maxHistory = 10
	store := session.NewStore(nil, maxHistory)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			store.GetOrCreate(99)
			store.AppendTurn(99, session.Turn{Role: session.RoleUser, Content: fmt.Sprintf("msg %d", n)})
		}(i)
	}
	wg.Wait()

	sessions, turns := store.Stats()
	if sessions != 1 {
		t.Errorf("session count = %d, want 1 (concurrent lazy-create diverged)", sessions)
	}
	if turns != maxHistory {
		t.Errorf("retained turns = %d, want %d", turns, maxHistory)
	}
}
