package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"hotel-ai-service/internal/models"
)

// InteractionLogger records conversational turns on a side channel. It is
// strictly best-effort: every failure is logged locally and discarded, and
// callers never wait on it.
type InteractionLogger struct {
	http    *http.Client
	url     string
	timeout time.Duration
}

// NewInteractionLogger returns a logger posting to url. An empty url
// disables logging entirely.
func NewInteractionLogger(url string, timeout time.Duration) *InteractionLogger {
	return &InteractionLogger{
		http:    &http.Client{Timeout: timeout},
		url:     url,
		timeout: timeout,
	}
}

// Log fires the turn record at the side channel from a fresh goroutine.
// The chat turn that triggered it has usually already been answered.
func (l *InteractionLogger) Log(entry models.ChatLogEntry) {
	if l.url == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()

		body, err := json.Marshal(entry)
		if err != nil {
			log.Printf("[Interaction Logger] marshal failed: %v", err)
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.url, bytes.NewReader(body))
		if err != nil {
			log.Printf("[Interaction Logger] request build failed: %v", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := l.http.Do(req)
		if err != nil {
			log.Printf("[Interaction Logger] post failed: %v", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			log.Printf("[Interaction Logger] unexpected status %s", resp.Status)
		}
	}()
}
