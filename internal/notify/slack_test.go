package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSlack_OK(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		got = payload["text"]
		w.WriteHeader(200)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	if s == nil {
		t.Fatal("expected slack client")
	}
	if err := s.Send(context.Background(), "Target DOWN", "URL: https://devt.de"); err != nil {
		t.Fatalf("send err: %v", err)
	}
	if !strings.HasPrefix(got, "*Target DOWN*") {
		t.Fatalf("payload not as expected: %q", got)
	}
}

func TestSlack_Non2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer ts.Close()

	s := NewSlack(ts.URL)
	err := s.Send(context.Background(), "X", "Y")
	if err == nil {
		t.Fatalf("expected error on non-2xx")
	}
}

func TestSlack_EmptyWebhookDisabled(t *testing.T) {
	if s := NewSlack(""); s != nil {
		t.Fatalf("empty webhook should disable the client")
	}
}

func TestMulti_JoinsErrors(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer bad.Close()
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer ok.Close()

	m := Multi{nil, NewSlack(bad.URL), NewSlack(ok.URL)}
	if err := m.Send(context.Background(), "T", "X"); err == nil {
		t.Fatalf("expected joined error from failing channel")
	}

	m = Multi{NewSlack(ok.URL)}
	if err := m.Send(context.Background(), "T", "X"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
