package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"alcyxob/fitness-program/internal/config"
	"alcyxob/fitness-program/internal/delivery"
)

const (
	DefaultBaseURL = "https://api.sendgrid.com"
	mailSendPath   = "/v3/mail/send"
	defaultTimeout = 15 * time.Second
	// maxErrorBody bounds how much of a failed response is kept in the error.
	maxErrorBody = 2048
)

// APIError is a non-2xx response from SendGrid.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sendgrid: status %d: %s", e.StatusCode, e.Body)
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To      []address `json:"to"`
	Subject string    `json:"subject"`
	SendAt  *int64    `json:"send_at,omitempty"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	ReplyTo          *address          `json:"reply_to,omitempty"`
	Content          []content         `json:"content"`
	SendAt           *int64            `json:"send_at,omitempty"`
}

// SendGridSender delivers mail through the SendGrid v3 mail-send endpoint.
// Deferred messages are queued on SendGrid's side using send_at.
type SendGridSender struct {
	apiKey  string
	from    address
	replyTo string
	baseURL string
	client  *http.Client
}

// NewSendGridSender builds a sender from config. A nil client gets a
// default one with a 15s timeout.
func NewSendGridSender(cfg config.SendGridConfig, client *http.Client) *SendGridSender {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &SendGridSender{
		apiKey:  cfg.APIKey,
		from:    address{Email: cfg.FromEmail, Name: cfg.FromName},
		replyTo: cfg.ReplyTo,
		baseURL: baseURL,
		client:  client,
	}
}

// Enabled reports whether an API key is configured.
func (s *SendGridSender) Enabled() bool { return s.apiKey != "" }

// Send implements delivery.Sender. Without an API key it returns
// delivery.ErrSenderDisabled and makes no request.
func (s *SendGridSender) Send(ctx context.Context, msg delivery.OutboundEmail) (string, error) {
	if !s.Enabled() {
		return "", delivery.ErrSenderDisabled
	}
	if msg.To == "" {
		return "", fmt.Errorf("sendgrid: recipient is required")
	}

	payload := mailSendRequest{
		Personalizations: []personalization{{
			To:      []address{{Email: msg.To, Name: msg.ToName}},
			Subject: msg.Subject,
			SendAt:  msg.SendAt,
		}},
		From: s.from,
		Content: []content{
			{Type: "text/plain", Value: msg.Text},
			{Type: "text/html", Value: msg.HTML},
		},
		SendAt: msg.SendAt,
	}
	if s.replyTo != "" {
		payload.ReplyTo = &address{Email: s.replyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("sendgrid: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+mailSendPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("sendgrid: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("sendgrid: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	id := resp.Header.Get("X-Message-Id")
	if id == "" {
		id = "unknown"
	}
	return id, nil
}
