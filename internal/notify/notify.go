package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Contact is the payload forwarded when a visitor submits the contact form.
type Contact struct {
	Name    string
	Email   string
	Subject string
	Message string
	SentAt  time.Time
}

// Notifier delivers contact notifications to the site owner.
type Notifier interface {
	NotifyContact(ctx context.Context, contact Contact) error
}

// Nop discards notifications. Used when no chat credentials are configured.
type Nop struct{}

func (Nop) NotifyContact(context.Context, Contact) error { return nil }

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Telegram posts contact notifications through the Bot API sendMessage method.
type Telegram struct {
	token    string
	chatID   string
	baseURL  string
	http     httpDoer
	location *time.Location
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// NewTelegram builds a notifier for the given bot token and chat.
func NewTelegram(token, chatID string) *Telegram {
	location, err := time.LoadLocation("Africa/Cairo")
	if err != nil {
		location = time.UTC
	}
	return &Telegram{
		token:    strings.TrimSpace(token),
		chatID:   strings.TrimSpace(chatID),
		baseURL:  "https://api.telegram.org",
		http:     &http.Client{Timeout: 10 * time.Second},
		location: location,
	}
}

// SetHTTPClient replaces the transport, mainly for tests.
func (t *Telegram) SetHTTPClient(client httpDoer) {
	if client == nil {
		t.http = &http.Client{Timeout: 10 * time.Second}
		return
	}
	t.http = client
}

// SetBaseURL overrides the Bot API address.
func (t *Telegram) SetBaseURL(base string) {
	t.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// NotifyContact sends one Markdown message describing the submission.
func (t *Telegram) NotifyContact(ctx context.Context, contact Contact) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      FormatContact(contact, t.location),
		ParseMode: "Markdown",
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("telegram api error (%s): %s", resp.Status, strings.TrimSpace(string(respBody)))
	}
	return nil
}

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// EscapeMarkdown escapes the characters Telegram's legacy Markdown treats as
// entity delimiters.
func EscapeMarkdown(value string) string {
	return markdownEscaper.Replace(value)
}

// FormatContact renders the notification text. Visitor supplied fields are
// escaped so they cannot break the message entities.
func FormatContact(contact Contact, location *time.Location) string {
	subject := strings.TrimSpace(contact.Subject)
	if subject == "" {
		subject = "بدون موضوع"
	}
	sentAt := contact.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}
	if location != nil {
		sentAt = sentAt.In(location)
	}

	var b strings.Builder
	b.WriteString("📬 *رسالة جديدة من الموقع*\n\n")
	fmt.Fprintf(&b, "👤 *الاسم:* %s\n", EscapeMarkdown(contact.Name))
	fmt.Fprintf(&b, "📧 *البريد:* %s\n", EscapeMarkdown(contact.Email))
	fmt.Fprintf(&b, "📝 *الموضوع:* %s\n\n", EscapeMarkdown(subject))
	b.WriteString("💬 *الرسالة:*\n")
	b.WriteString(EscapeMarkdown(contact.Message))
	b.WriteString("\n\n---\n")
	fmt.Fprintf(&b, "🕐 %s", sentAt.Format("2006-01-02 15:04"))
	return b.String()
}
