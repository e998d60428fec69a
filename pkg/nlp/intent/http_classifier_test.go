package intent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPClassifierClassify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/classify" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req classifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Text != "can I take CS116" {
			t.Errorf("Text = %q", req.Text)
		}

		json.NewEncoder(w).Encode(classifyResponse{Tag: CheckEligibility, Confidence: 0.93})
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL, 0)
	tag, conf, err := c.Classify(context.Background(), "can I take CS116")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if tag != CheckEligibility {
		t.Errorf("tag = %q, want %q", tag, CheckEligibility)
	}
	if conf != 0.93 {
		t.Errorf("confidence = %v, want 0.93", conf)
	}
}

func TestHTTPClassifierClampsConfidence(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(classifyResponse{Tag: Greeting, Confidence: 1.7})
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL, 0)
	_, conf, err := c.Classify(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if conf != 1 {
		t.Errorf("confidence = %v, want clamped to 1", conf)
	}
}

func TestHTTPClassifierErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model loading", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c := NewHTTPClassifier(srv.URL, 0)
		if _, _, err := c.Classify(context.Background(), "hello"); err == nil {
			t.Error("expected error for 503 response")
		}
	})

	t.Run("unreachable service", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := NewHTTPClassifier(srv.URL, 0)
		if _, _, err := c.Classify(context.Background(), "hello"); err == nil {
			t.Error("expected error for closed server")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer srv.Close()

		c := NewHTTPClassifier(srv.URL, 0)
		if _, _, err := c.Classify(context.Background(), "hello"); err == nil {
			t.Error("expected decode error")
		}
	})
}
