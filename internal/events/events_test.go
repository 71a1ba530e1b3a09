package events

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestWebhookSinkSignature(t *testing.T) {
	var (
		mu   sync.Mutex
		body []byte
		sig  string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		body = b
		sig = r.Header.Get("X-CMS-Signature")
		mu.Unlock()
	}))
	defer srv.Close()

	sink := NewWebhookSink(WebhookConfig{Enabled: true, Endpoint: srv.URL, Secret: "s3cret"})
	ev := New(PageSaved, PageEvent{Table: "default", Page: "home", Actor: "alice"})
	if err := sink.Emit(context.Background(), ev); err != nil {
		t.Fatalf("emit: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	var got Event
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Name != PageSaved || got.ID != ev.ID {
		t.Errorf("event = %+v", got)
	}
	mac := hmac.New(sha256.New, []byte("s3cret"))
	mac.Write(body)
	want := "sha256=" + hex.EncodeToString(mac.Sum(nil))
	if sig != want {
		t.Errorf("signature = %q, want %q", sig, want)
	}
}

func TestWebhookSinkErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	sink := NewWebhookSink(WebhookConfig{Enabled: true, Endpoint: srv.URL})
	if err := sink.Emit(context.Background(), New(PageDeleted, nil)); err == nil {
		t.Fatal("expected error for 5xx response")
	}
}

func TestNewWebhookSinkDisabled(t *testing.T) {
	if s := NewWebhookSink(WebhookConfig{Endpoint: "http://example.com"}); s != nil {
		t.Error("disabled config must yield nil sink")
	}
	if s := NewWebhookSink(WebhookConfig{Enabled: true}); s != nil {
		t.Error("missing endpoint must yield nil sink")
	}
}

func TestRedisSinkPublish(t *testing.T) {
	mr := miniredis.RunT(t)
	sink, err := NewRedisSink(RedisConfig{Enabled: true, DSN: "redis://" + mr.Addr(), Channel: "cms.events"})
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	sub := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer sub.Close()
	ps := sub.Subscribe(context.Background(), "cms.events")
	defer ps.Close()
	if _, err := ps.Receive(context.Background()); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	ev := New(PageSaved, PageEvent{Table: "default", Page: "home"})
	if err := sink.Emit(context.Background(), ev); err != nil {
		t.Fatalf("emit: %v", err)
	}

	select {
	case msg := <-ps.Channel():
		var got Event
		if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.ID != ev.ID {
			t.Errorf("event id = %q, want %q", got.ID, ev.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}

func TestRedisSinkDefaultChannel(t *testing.T) {
	sink, err := NewRedisSink(RedisConfig{Enabled: true, DSN: "redis://127.0.0.1:6379"})
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	if sink.Channel != DefaultRedisChannel {
		t.Errorf("channel = %q", sink.Channel)
	}
}

func TestKafkaPartitionKey(t *testing.T) {
	if k := partitionKey(New(PageSaved, PageEvent{Table: "default", Page: "home"})); k != "default" {
		t.Errorf("page event key = %q", k)
	}
	if k := partitionKey(New(SectionValidated, ValidationEvent{Table: "site-2", Type: "hero"})); k != "site-2" {
		t.Errorf("validation event key = %q", k)
	}
	if k := partitionKey(New(PageDeleted, nil)); k != PageDeleted {
		t.Errorf("fallback key = %q", k)
	}
}

type flakySink struct {
	mu       sync.Mutex
	failures int
	got      []Event
}

func (f *flakySink) Emit(ctx context.Context, e Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return context.DeadlineExceeded
	}
	f.got = append(f.got, e)
	return nil
}

type memDLQ struct {
	mu     sync.Mutex
	stored []Event
}

func (d *memDLQ) Store(ctx context.Context, e Event, attempts int, lastErr string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stored = append(d.stored, e)
	return nil
}

func TestDispatcherRetries(t *testing.T) {
	var cfg Config
	cfg.Retry.MaxAttempts = 3
	cfg.Retry.InitialDelay = time.Millisecond
	sink := &flakySink{failures: 2}
	d := NewDispatcher(cfg, nil, sink)

	d.Dispatch(context.Background(), New(PageSaved, nil))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		sink.mu.Lock()
		n := len(sink.got)
		sink.mu.Unlock()
		if n == 1 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("event never delivered after retries")
}

func TestDispatcherDeadLetters(t *testing.T) {
	var cfg Config
	cfg.Retry.MaxAttempts = 2
	cfg.Retry.InitialDelay = time.Millisecond
	sink := &flakySink{failures: 10}
	dlq := &memDLQ{}
	d := NewDispatcher(cfg, dlq, sink)

	ev := New(PageDeleted, nil)
	d.Dispatch(context.Background(), ev)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		dlq.mu.Lock()
		n := len(dlq.stored)
		dlq.mu.Unlock()
		if n == 1 {
			dlq.mu.Lock()
			defer dlq.mu.Unlock()
			if dlq.stored[0].ID != ev.ID {
				t.Errorf("stored event id = %q, want %q", dlq.stored[0].ID, ev.ID)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("event never reached the dead letter queue")
}
