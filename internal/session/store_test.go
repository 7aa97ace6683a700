package session

import (
	"fmt"
	"sync"
	"testing"
)

func TestGetReturnsDefaultWithoutCreating(t *testing.T) {
	store := NewStore(DefaultConfig())

	sess := store.Get("alice")
	if sess.Mode != ModeNormal {
		t.Errorf("default mode = %q, want %q", sess.Mode, ModeNormal)
	}
	if len(sess.ChatHistory) != 0 || len(sess.DreamHistory) != 0 {
		t.Errorf("default session has non-empty history")
	}
	if store.Len() != 0 {
		t.Errorf("Get created an entry, store has %d sessions", store.Len())
	}
}

func TestSetAndReset(t *testing.T) {
	store := NewStore(DefaultConfig())

	sess := New()
	sess.Mode = ModeAIChat
	sess.AppendChat(ChatTurn{RoleUser, "hello"}, ChatTurn{RoleAssistant, "hi there"})
	sess.AudioFileID = "file123"
	store.Set("alice", sess)

	got := store.Get("alice")
	if got.Mode != ModeAIChat {
		t.Errorf("mode = %q, want %q", got.Mode, ModeAIChat)
	}
	if len(got.ChatHistory) != 2 {
		t.Fatalf("chat history length = %d, want 2", len(got.ChatHistory))
	}
	if got.AudioFileID != "file123" {
		t.Errorf("audio file id = %q, want %q", got.AudioFileID, "file123")
	}

	store.Reset("alice")
	got = store.Get("alice")
	if got.Mode != ModeNormal || len(got.ChatHistory) != 0 || got.AudioFileID != "" {
		t.Errorf("reset session = %+v, want default", got)
	}
}

func TestChatHistoryClampFIFO(t *testing.T) {
	store := NewStore(DefaultConfig())

	sess := New()
	sess.Mode = ModeAIChat
	for i := 0; i < 8; i++ {
		sess.AppendChat(
			ChatTurn{RoleUser, fmt.Sprintf("q%d", i)},
			ChatTurn{RoleAssistant, fmt.Sprintf("a%d", i)},
		)
	}
	store.Set("alice", sess)

	got := store.Get("alice")
	if len(got.ChatHistory) != DefaultChatHistoryLimit {
		t.Fatalf("chat history length = %d, want %d", len(got.ChatHistory), DefaultChatHistoryLimit)
	}
	// Oldest entries dropped first: the buffer starts at exchange 3.
	if got.ChatHistory[0].Content != "q3" {
		t.Errorf("oldest kept entry = %q, want %q", got.ChatHistory[0].Content, "q3")
	}
	if got.ChatHistory[9].Content != "a7" {
		t.Errorf("newest entry = %q, want %q", got.ChatHistory[9].Content, "a7")
	}
}

func TestDreamHistoryClamp(t *testing.T) {
	store := NewStore(Config{DreamHistoryLimit: 3})

	sess := New()
	sess.Mode = ModeDreamriddle
	for _, d := range []string{"a", "b", "c", "d", "e"} {
		sess.AppendDream(d)
	}
	store.Set("alice", sess)

	got := store.Get("alice")
	if len(got.DreamHistory) != 3 {
		t.Fatalf("dream history length = %d, want 3", len(got.DreamHistory))
	}
	for i, want := range []string{"c", "d", "e"} {
		if got.DreamHistory[i] != want {
			t.Errorf("dream history[%d] = %q, want %q", i, got.DreamHistory[i], want)
		}
	}
}

func TestDreamHistoryUnbounded(t *testing.T) {
	store := NewStore(Config{DreamHistoryLimit: 0})

	sess := New()
	for i := 0; i < 50; i++ {
		sess.AppendDream(fmt.Sprintf("dream %d", i))
	}
	store.Set("alice", sess)

	if got := store.Get("alice"); len(got.DreamHistory) != 50 {
		t.Errorf("dream history length = %d, want 50 (unbounded)", len(got.DreamHistory))
	}
}

func TestGetReturnsCopy(t *testing.T) {
	store := NewStore(DefaultConfig())

	sess := New()
	sess.AppendDream("original")
	store.Set("alice", sess)

	got := store.Get("alice")
	got.DreamHistory[0] = "mutated"
	got.Mode = ModeMath

	again := store.Get("alice")
	if again.DreamHistory[0] != "original" {
		t.Errorf("store leaked a mutable reference: %q", again.DreamHistory[0])
	}
	if again.Mode != ModeNormal {
		t.Errorf("stored mode changed to %q", again.Mode)
	}
}

func TestPerUserLockSerializes(t *testing.T) {
	store := NewStore(DefaultConfig())

	// Two goroutines per user doing read-modify-write under the user
	// lock; every append must survive.
	const turns = 20
	var wg sync.WaitGroup
	for _, user := range []string{"alice", "bob"} {
		for g := 0; g < 2; g++ {
			wg.Add(1)
			go func(user string) {
				defer wg.Done()
				for i := 0; i < turns; i++ {
					unlock := store.Lock(user)
					sess := store.Get(user)
					sess.AppendDream("x")
					store.Set(user, sess)
					unlock()
				}
			}(user)
		}
	}
	wg.Wait()

	// The bound clamps the buffer, so disable it for the count check.
	unbounded := NewStore(Config{DreamHistoryLimit: 0})
	var wg2 sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg2.Add(1)
		go func() {
			defer wg2.Done()
			for i := 0; i < turns; i++ {
				unlock := unbounded.Lock("carol")
				sess := unbounded.Get("carol")
				sess.AppendDream("x")
				unbounded.Set("carol", sess)
				unlock()
			}
		}()
	}
	wg2.Wait()

	if got := len(unbounded.Get("carol").DreamHistory); got != 4*turns {
		t.Errorf("lost updates: dream history length = %d, want %d", got, 4*turns)
	}
}
