package usecase

import (
	"context"
	"strings"

	"go-studio-backend/config"
	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/apperror"
	"go-studio-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	cfg      *config.Config
	sender   email.Sender
	validate *validator.Validate
}

// NewContactUsecase creates the contact form usecase. The validator
// instance must have the intake validators registered (validation.RegisterValidators).
func NewContactUsecase(cfg *config.Config, sender email.Sender, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		cfg:      cfg,
		sender:   sender,
		validate: validate,
	}
}

// contactSubmission is the trimmed, validated form of a ContactRequest.
type contactSubmission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,intake_email"`
	Company string
	Phone   string
	Message string `validate:"required"`
	Budget  string `validate:"required"`
}

// Ready is the configuration guard, checked per request so a
// misconfigured deployment still answers instead of crashing at startup.
func (uc *contactUsecase) Ready() error {
	if !uc.cfg.ContactConfigured() {
		return apperror.Unavailable(domain.MsgContactNotConfigured)
	}
	return nil
}

func (uc *contactUsecase) SendInquiry(ctx context.Context, req *domain.ContactRequest) error {
	if err := uc.Ready(); err != nil {
		return err
	}

	sub := contactSubmission{
		Name:    strings.TrimSpace(req.Name.String()),
		Email:   strings.TrimSpace(req.Email.String()),
		Company: strings.TrimSpace(req.Company.String()),
		Phone:   strings.TrimSpace(req.Phone.String()),
		Message: strings.TrimSpace(req.Message.String()),
		Budget:  strings.TrimSpace(req.Budget.String()),
	}

	if err := uc.validate.Struct(sub); err != nil {
		return apperror.BadRequest(domain.MsgContactInvalid)
	}

	msg := email.Message{
		From:    uc.cfg.FromEmail,
		To:      uc.cfg.ContactToEmail,
		ReplyTo: sub.Email,
		Subject: "New contact form inquiry from " + sub.Name,
		Text:    inquiryBody(sub),
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return apperror.Internal(domain.MsgContactFailed, err)
	}
	return nil
}

// inquiryBody renders the fixed-order plain-text block sent to the studio
// inbox. Optional fields are substituted with "N/A".
func inquiryBody(sub contactSubmission) string {
	company := sub.Company
	if company == "" {
		company = "N/A"
	}
	phone := sub.Phone
	if phone == "" {
		phone = "N/A"
	}

	lines := []string{
		"Name: " + sub.Name,
		"Email: " + sub.Email,
		"Company: " + company,
		"Phone: " + phone,
		"Budget: " + sub.Budget,
		"",
		"Message:",
		sub.Message,
	}
	return strings.Join(lines, "\n")
}
