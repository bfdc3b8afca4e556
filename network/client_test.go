package network

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSubmitSingle(t *testing.T) {
	var got SpHighScore
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/sp-high-score" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	c := NewHighScoreClient(srv.URL+"/api/", time.Second)
	out, err := c.SubmitSingle(context.Background(), SpHighScore{Name: "ACE", Score: 1040})
	if err != nil {
		t.Fatalf("SubmitSingle: %v", err)
	}
	if got.Name != "ACE" || got.Score != 1040 {
		t.Errorf("server received %+v", got)
	}
	if out != got {
		t.Errorf("returned %+v, want %+v", out, got)
	}
}

func TestMultiScores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/mp-high-score" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"player1":"RED","player2":"BLUE","score":2200},{"player1":"A","player2":"B","score":80}]`))
	}))
	defer srv.Close()

	c := NewHighScoreClient(srv.URL+"/api", time.Second)
	scores, err := c.MultiScores(context.Background())
	if err != nil {
		t.Fatalf("MultiScores: %v", err)
	}
	want := []MpHighScore{{"RED", "BLUE", 2200}, {"A", "B", 80}}
	if len(scores) != len(want) {
		t.Fatalf("scores = %+v", scores)
	}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("score %d = %+v, want %+v", i, scores[i], want[i])
		}
	}
}

func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewHighScoreClient(srv.URL, time.Second)
	_, err := c.SubmitMulti(context.Background(), MpHighScore{Player1: "A", Player2: "B", Score: 1})

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != http.StatusBadRequest || se.Body != `{"error":"invalid json"}` {
		t.Errorf("status error = %+v", se)
	}
}

func TestContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewHighScoreClient(srv.URL, time.Second)
	if _, err := c.SingleScores(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := NewHighScoreClient(srv.URL, time.Second)
	if _, err := c.SingleScores(context.Background()); err == nil {
		t.Error("expected a decode error")
	}
}
