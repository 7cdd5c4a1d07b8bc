// Package notify delivers registration events to a Discord-compatible
// webhook. Delivery is strictly best-effort: every failure path is logged and
// swallowed so a notification problem can never fail the form submission that
// triggered it.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tillyhacks/registration-backend/internal/config"
)

// message is the webhook payload shape.
type message struct {
	Content *string `json:"content"`
	Embeds  []embed `json:"embeds"`
}

type embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
	Timestamp   string `json:"timestamp"`
	Footer      footer `json:"footer"`
}

type footer struct {
	Text string `json:"text"`
}

const footerText = "TillyHacks Registration System"

// Emitter posts events to the configured webhook URL.
// An empty URL disables delivery entirely.
type Emitter struct {
	url    string
	client *http.Client
	log    *slog.Logger
	now    func() time.Time
}

// NewEmitter creates an Emitter from config.
func NewEmitter(cfg config.NotifyConfig, logger *slog.Logger) *Emitter {
	return &Emitter{
		url:    cfg.WebhookURL,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    logger.With("component", "notify"),
		now:    time.Now,
	}
}

// Emit delivers one event. It never returns an error: an unconfigured
// endpoint logs and returns without a network call, and transport or non-2xx
// failures are logged and discarded. Callers that must not block on delivery
// run Emit in its own goroutine with a detached context.
func (e *Emitter) Emit(ctx context.Context, ev Event) {
	if e.url == "" {
		e.log.DebugContext(ctx, "webhook not configured, dropping event",
			slog.String("kind", string(ev.Kind)),
			slog.String("action", string(ev.Action)),
		)
		return
	}

	if err := e.send(ctx, ev); err != nil {
		e.log.ErrorContext(ctx, "webhook delivery failed",
			slog.String("kind", string(ev.Kind)),
			slog.String("action", string(ev.Action)),
			slog.String("error", err.Error()),
		)
		return
	}

	e.log.InfoContext(ctx, "webhook delivered",
		slog.String("kind", string(ev.Kind)),
		slog.String("action", string(ev.Action)),
	)
}

func (e *Emitter) send(ctx context.Context, ev Event) error {
	msg := message{
		Embeds: []embed{{
			Title:       ev.Title,
			Description: ev.Description,
			Color:       ev.Color,
			Timestamp:   e.now().UTC().Format(time.RFC3339),
			Footer:      footer{Text: footerText},
		}},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded %d", resp.StatusCode)
	}

	return nil
}
