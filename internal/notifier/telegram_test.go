package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func testTelegram(baseURL string) *Telegram {
	tn := NewTelegram("test-token", "42", "", zerolog.Nop())
	tn.APIBase = baseURL
	return tn
}

func TestTelegram_Send(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Error(err)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	if err := testTelegram(srv.URL).Send("☯️ <b>test</b>"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gotPath, "bottest-token/sendMessage") {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotPayload["chat_id"] != "42" || gotPayload["parse_mode"] != "HTML" {
		t.Errorf("unexpected payload %+v", gotPayload)
	}
	if gotPayload["text"] != "☯️ <b>test</b>" {
		t.Errorf("text: got %q", gotPayload["text"])
	}
}

func TestTelegram_SendWithRetry_RecoversAfterFailure(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "flood control", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	if err := testTelegram(srv.URL).SendWithRetry(context.Background(), "retry me", 3); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Errorf("expected 2 attempts, got %d", got)
	}
}

func TestTelegram_SendWithRetry_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// first backoff is 1s, so cancellation must win
	startAt := time.Now()
	err := testTelegram(srv.URL).SendWithRetry(ctx, "never delivered", 5)
	if err != context.DeadlineExceeded {
		t.Fatalf("expected context deadline, got %v", err)
	}
	if time.Since(startAt) > 500*time.Millisecond {
		t.Error("cancellation must interrupt the backoff wait")
	}
}
