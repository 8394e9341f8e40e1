package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestTelegramSend_PostsMessage(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/sendMessage") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "42", "")
	tn.apiBase = srv.URL

	if err := tn.Send(context.Background(), "Buy signal: AAPL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["chat_id"] != "42" || got["text"] != "Buy signal: AAPL" {
		t.Errorf("unexpected payload: %v", got)
	}
}

func TestTelegramSend_CancelledContextHaltsRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		cancel()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "42", "")
	tn.apiBase = srv.URL

	start := time.Now()
	err := tn.Send(ctx, "report")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := atomic.LoadInt32(&attempts); got != 1 {
		t.Errorf("expected a single attempt before honoring cancellation, got %d", got)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Send blocked %v waiting out the backoff", elapsed)
	}
}

func TestPolling_DispatchesOnlySlashCommands(t *testing.T) {
	commands := make(chan string, 4)
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			w.Write([]byte(`{"ok":true}`))
			return
		}
		if atomic.AddInt32(&polls, 1) == 1 {
			w.Write([]byte(`{"ok":true,"result":[
				{"update_id":7,"message":{"text":"/scan"}},
				{"update_id":8,"message":{"text":"hello there"}},
				{"update_id":9}
			]}`))
			return
		}
		w.Write([]byte(`{"ok":true,"result":[]}`))
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "42", "")
	tn.apiBase = srv.URL

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tn.StartPolling(ctx, func(cmd string) string {
			commands <- cmd
			return ""
		})
		close(done)
	}()

	select {
	case cmd := <-commands:
		if cmd != "/scan" {
			t.Errorf("expected /scan to be dispatched, got %q", cmd)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no command dispatched")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("polling did not stop after cancellation")
	}

	select {
	case cmd := <-commands:
		t.Errorf("plain chatter was dispatched as a command: %q", cmd)
	default:
	}
}
