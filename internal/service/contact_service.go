package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/notify"
	"gorm.io/gorm"
)

var (
	// ErrContactNotFound is returned when the message does not exist.
	ErrContactNotFound = errors.New("contact message not found")
	// ErrContactInvalidInput is returned when a required field is blank or the email is malformed.
	ErrContactInvalidInput = errors.New("invalid contact input")
)

// DefaultNotifyTimeout bounds a single outbound notification attempt.
const DefaultNotifyTimeout = 10 * time.Second

// ContactInput is a visitor submission from the public contact form.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService stores contact messages and forwards them to the owner.
type ContactService struct {
	db       *gorm.DB
	notifier notify.Notifier
	log      logger.Logger
	policy   *bluemonday.Policy
	timeout  time.Duration
	now      func() time.Time
	pending  sync.WaitGroup
}

// NewContactService wires the store and the notifier. A nil notifier disables notifications.
func NewContactService(gdb *gorm.DB, notifier notify.Notifier, log logger.Logger) *ContactService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ContactService{
		db:       gdb,
		notifier: notifier,
		log:      log,
		policy:   bluemonday.StrictPolicy(),
		timeout:  DefaultNotifyTimeout,
		now:      time.Now,
	}
}

// SetNotifyTimeout overrides the per-notification timeout.
func (s *ContactService) SetNotifyTimeout(timeout time.Duration) {
	if timeout > 0 {
		s.timeout = timeout
	}
}

// Submit validates and stores the message, then notifies in the background.
// Notification failures are logged and never returned.
func (s *ContactService) Submit(input ContactInput) (*db.ContactMessage, error) {
	message := db.ContactMessage{
		Name:    s.clean(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Subject: s.clean(input.Subject),
		Message: s.clean(input.Message),
	}

	if message.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrContactInvalidInput)
	}
	if message.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrContactInvalidInput)
	}
	if _, err := mail.ParseAddress(message.Email); err != nil {
		return nil, fmt.Errorf("%w: email is invalid", ErrContactInvalidInput)
	}

	if err := s.db.Create(&message).Error; err != nil {
		return nil, storeError("create contact message", err)
	}

	s.dispatch(notify.Contact{
		Name:    message.Name,
		Email:   message.Email,
		Subject: message.Subject,
		Message: message.Message,
		SentAt:  s.now(),
	})

	return &message, nil
}

func (s *ContactService) dispatch(contact notify.Contact) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		if err := s.notifier.NotifyContact(ctx, contact); err != nil {
			s.log.Warn("contact notification failed",
				logger.String("email", contact.Email),
				logger.Error(err),
			)
			return
		}
		s.log.Debug("contact notification sent", logger.String("email", contact.Email))
	}()
}

// Wait blocks until every in-flight notification has finished.
func (s *ContactService) Wait() {
	s.pending.Wait()
}

// List returns every message, newest first.
func (s *ContactService) List() ([]db.ContactMessage, error) {
	var messages []db.ContactMessage
	if err := s.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, storeError("list contact messages", err)
	}
	return messages, nil
}

// MarkRead flags one message as read.
func (s *ContactService) MarkRead(id string) (*db.ContactMessage, error) {
	var message db.ContactMessage
	if err := s.db.Where("id = ?", id).First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, storeError("find contact message", err)
	}

	if err := s.db.Model(&message).Update("is_read", true).Error; err != nil {
		return nil, storeError("mark contact message read", err)
	}
	message.IsRead = true
	return &message, nil
}

// Delete removes a message permanently.
func (s *ContactService) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&db.ContactMessage{})
	if result.Error != nil {
		return storeError("delete contact message", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}

// Counts returns the total and unread number of messages.
func (s *ContactService) Counts() (total int, unread int, err error) {
	var all, notRead int64
	if err := s.db.Model(&db.ContactMessage{}).Count(&all).Error; err != nil {
		return 0, 0, storeError("count contact messages", err)
	}
	if err := s.db.Model(&db.ContactMessage{}).Where("is_read = ?", false).Count(&notRead).Error; err != nil {
		return 0, 0, storeError("count unread contact messages", err)
	}
	return int(all), int(notRead), nil
}

const maxCleanPasses = 5

// clean strips markup and decodes entities until the text settles, so
// entity-encoded tags are stripped as well. Text that does not settle is
// kept in its escaped form.
func (s *ContactService) clean(value string) string {
	for pass := 0; pass < maxCleanPasses; pass++ {
		next := html.UnescapeString(s.policy.Sanitize(value))
		if next == value {
			return strings.TrimSpace(next)
		}
		value = next
	}
	return strings.TrimSpace(s.policy.Sanitize(value))
}
