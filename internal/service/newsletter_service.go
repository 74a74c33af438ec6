package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/repository"
	"github.com/yuriblog/blog-backend/pkg/logger"
	"github.com/yuriblog/blog-backend/pkg/mailer"
	"golang.org/x/sync/errgroup"
)

var newsletterDispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "blog",
		Name:      "newsletter_dispatch_total",
		Help:      "Newsletter emails attempted, by outcome",
	},
	[]string{"status"},
)

const defaultSendTimeout = 15 * time.Second

// NewsletterConfig controls the fan-out
type NewsletterConfig struct {
	From        string
	SendTimeout time.Duration
	// MaxConcurrency caps in-flight sends. 0 sends to everyone at once.
	MaxConcurrency int
}

// NewsletterService announces a post to every subscriber
type NewsletterService interface {
	Send(ctx context.Context, a *domain.Announcement) (*domain.NewsletterReport, error)
}

type newsletterService struct {
	subscribers repository.SubscriberRepository
	sender      mailer.Sender
	validate    *validator.Validate
	cfg         NewsletterConfig
}

// NewNewsletterService creates a NewsletterService.
// sender may be nil, in which case Send returns common.ErrNotConfigured.
func NewNewsletterService(subscribers repository.SubscriberRepository, sender mailer.Sender, cfg NewsletterConfig) NewsletterService {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	return &newsletterService{
		subscribers: subscribers,
		sender:      sender,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// Send emails the announcement to every subscriber concurrently.
// One failed email never stops the others; each outcome is in the report.
func (s *newsletterService) Send(ctx context.Context, a *domain.Announcement) (*domain.NewsletterReport, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: announcement is required", common.ErrInvalidInput)
	}
	announcement := domain.Announcement{
		Title:   strings.TrimSpace(a.Title),
		Excerpt: strings.TrimSpace(a.Excerpt),
		URL:     strings.TrimSpace(a.URL),
	}
	if err := s.validateAnnouncement(&announcement); err != nil {
		return nil, err
	}

	if s.sender == nil {
		return nil, common.ErrNotConfigured
	}

	emails, err := s.subscribers.ListEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	if len(emails) == 0 {
		return &domain.NewsletterReport{
			Message: "No subscribers found",
			Results: []*domain.DispatchResult{},
		}, nil
	}

	html, err := renderNewsletter(&announcement)
	if err != nil {
		return nil, fmt.Errorf("render newsletter: %w", err)
	}
	subject := newsletterSubject(&announcement)

	results := make([]*domain.DispatchResult, len(emails))
	var g errgroup.Group
	if s.cfg.MaxConcurrency > 0 {
		g.SetLimit(s.cfg.MaxConcurrency)
	}

	for i, email := range emails {
		g.Go(func() error {
			results[i] = s.dispatch(ctx, email, subject, html)
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	sent := 0
	for _, r := range results {
		if r.Success {
			sent++
		}
	}

	logger.GetLogger().Info().
		Str("title", announcement.Title).
		Int("sent", sent).
		Int("total", len(emails)).
		Msg("newsletter sent")

	return &domain.NewsletterReport{
		Message: fmt.Sprintf("Sent to %d/%d subscribers", sent, len(emails)),
		Sent:    sent,
		Total:   len(emails),
		Results: results,
	}, nil
}

func (s *newsletterService) dispatch(ctx context.Context, email, subject, html string) *domain.DispatchResult {
	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()

	_, err := s.sender.Send(sendCtx, &mailer.Message{
		From:    s.cfg.From,
		To:      email,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		newsletterDispatchTotal.WithLabelValues("failed").Inc()
		logger.GetLogger().Warn().Err(err).Str("email", email).Msg("newsletter dispatch failed")
		return &domain.DispatchResult{Email: email, Success: false, Error: err.Error()}
	}

	newsletterDispatchTotal.WithLabelValues("sent").Inc()
	return &domain.DispatchResult{Email: email, Success: true}
}

func (s *newsletterService) validateAnnouncement(a *domain.Announcement) error {
	err := s.validate.Struct(a)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: missing %s", common.ErrInvalidInput, strings.Join(fields, ", "))
}
