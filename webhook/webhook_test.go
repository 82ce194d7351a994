package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDeliver_SignsBody(t *testing.T) {
	type capture struct {
		body    []byte
		sig, ua string
	}
	got := make(chan capture, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got <- capture{body: body, sig: r.Header.Get(SignatureHeader), ua: r.Header.Get("User-Agent")}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	event := NewEvent(EventBatchCompleted, "batch-1", map[string]int{"total": 2})
	if err := Deliver(context.Background(), srv.URL, "s3cret", event); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	c := <-got
	gotBody, gotSig, gotUA := c.body, c.sig, c.ua

	if !Verify("s3cret", gotBody, gotSig) {
		t.Errorf("signature %q does not verify", gotSig)
	}
	if Verify("other", gotBody, gotSig) {
		t.Error("signature verified with the wrong secret")
	}
	if gotUA != "Cookly-Webhook/1.0" {
		t.Errorf("user agent = %q", gotUA)
	}

	var decoded Event
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Type != EventBatchCompleted || decoded.JobID != "batch-1" || decoded.Timestamp == 0 {
		t.Errorf("event = %+v", decoded)
	}
}

func TestDeliver_NoSecretNoSignature(t *testing.T) {
	var hadSig atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hadSig.Store(r.Header.Get(SignatureHeader) != "")
	}))
	defer srv.Close()

	if err := Deliver(context.Background(), srv.URL, "", NewEvent(EventBatchCompleted, "b", nil)); err != nil {
		t.Fatalf("Deliver: %v", err)
	}
	if hadSig.Load() {
		t.Error("unexpected signature header without a secret")
	}
}

func TestDeliver_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if err := Deliver(context.Background(), srv.URL, "", NewEvent(EventBatchCompleted, "b", nil)); err == nil {
		t.Fatal("expected error for 502")
	}
}

func TestDeliverWithRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	delays := []time.Duration{0, time.Millisecond, time.Millisecond, time.Millisecond}
	if err := deliverWithRetry(srv.URL, "", NewEvent(EventBatchCompleted, "b", nil), delays); err != nil {
		t.Fatalf("deliverWithRetry: %v", err)
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("attempts = %d, want 3", n)
	}
}

func TestDeliverWithRetry_Exhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	delays := []time.Duration{0, time.Millisecond}
	if err := deliverWithRetry(srv.URL, "", NewEvent(EventBatchCompleted, "b", nil), delays); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("attempts = %d, want 2", n)
	}
}
