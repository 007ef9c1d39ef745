package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	dirmetrics "pcdir/internal/directory/metrics"
	"pcdir/internal/directory/models"
	person "pcdir/internal/person/models"
	"pcdir/internal/sentinel"
	dErrors "pcdir/pkg/domain-errors"
)

// DirectoryService orchestrates the PC directory: adding entries, enumerating
// them, and routing mail to the first eligible machine of an owner.
type DirectoryService struct {
	entries EntryStore
	logger  *slog.Logger
	metrics *dirmetrics.Metrics
	tracer  trace.Tracer
}

func NewDirectoryService(entries EntryStore, opts ...Option) *DirectoryService {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	tracer := cfg.tracer
	if tracer == nil {
		tracer = otel.Tracer("pcdir/directory")
	}
	return &DirectoryService{
		entries: entries,
		logger:  logger,
		metrics: cfg.metrics,
		tracer:  tracer,
	}
}

// AddPC fills the builder's defaults and appends a new entry, resolving the
// owner identity against the registry. A same-email/different-identity owner
// is rejected with a conflict carrying *models.DuplicateEmailError, and the
// directory is left unchanged.
func (s *DirectoryService) AddPC(ctx context.Context, b models.PCBuilder) error {
	ctx, span := s.tracer.Start(ctx, "directory.AddPC")
	var err error
	defer func() { endSpan(span, err) }()

	b.FillDefaults()

	entry, err := s.entries.AppendPC(ctx, b)
	if err != nil {
		var dup *models.DuplicateEmailError
		if errors.As(err, &dup) {
			s.incrementDuplicateRejected()
			s.logger.Warn("add pc rejected",
				slog.String("email", dup.Email.String()),
				slog.String("reason", "owner email registered to a different person"))
			err = dErrors.Wrap(err, dErrors.CodeConflict, "owner email is already registered to a different person")
			return err
		}
		err = dErrors.Wrap(err, dErrors.CodeInternal, "failed to add pc")
		return err
	}

	span.SetAttributes(attribute.Int("pc.id", entry.ID()))
	s.incrementPCAdded()
	attrs := []any{slog.Int("id", entry.ID()), slog.String("os", entry.OS().String())}
	if owner := entry.Owner(); owner != nil {
		attrs = append(attrs, slog.String("owner", owner.Email.String()))
	}
	s.logger.Info("pc added", attrs...)
	return nil
}

// ListPCs returns a read-only snapshot of all entries in insertion order.
func (s *DirectoryService) ListPCs(ctx context.Context) []*models.Entry {
	return s.entries.List(ctx)
}

// SendEmail parses the raw recipient address and delivers message to the
// first powered-on PC of that owner. Malformed addresses fail with a
// validation error wrapping sentinel.ErrInvalidEmailAddress.
func (s *DirectoryService) SendEmail(ctx context.Context, to string, message string) error {
	email, err := person.ParseEmailAddress(to)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "recipient is not a valid email address")
	}
	return s.SendEmailTo(ctx, email, message)
}

// SendEmailTo delivers message to the mailbox of the first entry, in
// insertion order, that is owned by the given address and is On.
//
// Routing policy: first eligible machine by insertion order. No delivery to
// every machine, no fallback to a non-On machine, no retry. A machine under
// maintenance is ineligible for the duration of the lock. On failure no
// mailbox is mutated.
func (s *DirectoryService) SendEmailTo(ctx context.Context, to person.EmailAddress, message string) error {
	ctx, span := s.tracer.Start(ctx, "directory.SendEmail",
		trace.WithAttributes(attribute.String("email.to", to.String())))
	var err error
	defer func() { endSpan(span, err) }()

	owned := s.entries.FindByOwnerEmail(ctx, to)
	if len(owned) == 0 {
		s.incrementDeliveryFailure("email_not_found")
		err = dErrors.Wrap(&models.EmailNotFoundError{Email: to}, dErrors.CodeNotFound,
			"no PC is owned by the given email address")
		return err
	}

	msg := models.NewMessage(message)
	for _, entry := range owned {
		if entry.Deliver(msg) {
			span.SetAttributes(attribute.Int("pc.id", entry.ID()))
			s.incrementEmailDelivered()
			s.logger.Info("email delivered",
				slog.String("to", to.String()),
				slog.Int("pc_id", entry.ID()),
				slog.String("message_id", msg.ID.String()))
			return nil
		}
	}

	s.incrementDeliveryFailure("unavailable")
	s.logger.Warn("email undeliverable",
		slog.String("to", to.String()),
		slog.Int("owned_pcs", len(owned)))
	err = dErrors.Wrap(sentinel.ErrUnavailable, dErrors.CodeUnavailable,
		"all PCs of the recipient are off or in maintenance")
	return err
}

// SearchByOwnerName returns the entries whose owner matches the given name
// parts, case-insensitively. Empty parts match anything, so a single part can
// be used on its own.
func (s *DirectoryService) SearchByOwnerName(ctx context.Context, first, last string) []*models.Entry {
	first = strings.ToLower(strings.TrimSpace(first))
	last = strings.ToLower(strings.TrimSpace(last))

	var out []*models.Entry
	for _, entry := range s.entries.List(ctx) {
		owner := entry.Owner()
		if owner == nil {
			continue
		}
		if first != "" && strings.ToLower(owner.First) != first {
			continue
		}
		if last != "" && strings.ToLower(owner.Last) != last {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *DirectoryService) incrementPCAdded() {
	if s.metrics != nil {
		s.metrics.IncrementPCAdded()
	}
}

func (s *DirectoryService) incrementEmailDelivered() {
	if s.metrics != nil {
		s.metrics.IncrementEmailDelivered()
	}
}

func (s *DirectoryService) incrementDeliveryFailure(reason string) {
	if s.metrics != nil {
		s.metrics.IncrementDeliveryFailure(reason)
	}
}

func (s *DirectoryService) incrementDuplicateRejected() {
	if s.metrics != nil {
		s.metrics.IncrementDuplicateRejected()
	}
}
