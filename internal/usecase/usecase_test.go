package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-studio-backend/config"
	"go-studio-backend/internal/domain"
	"go-studio-backend/internal/usecase"
	"go-studio-backend/pkg/apperror"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func fullConfig() *config.Config {
	return &config.Config{
		ResendAPIKey:   "re_test_key",
		FromEmail:      "site@studio.dev",
		ContactToEmail: "hello@studio.dev",
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func appErr(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	return appErr
}

func TestContactConfigurationGuard(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(&config.Config{}, sender, newValidator())

	// Guard fires regardless of payload validity
	req := &domain.ContactRequest{
		Name: "Jo", Email: "jo@x.com", Message: "Hello", Budget: "webflow",
	}
	err := uc.SendInquiry(context.Background(), req)

	ae := appErr(t, err)
	assert.Equal(t, 500, ae.Code)
	assert.Equal(t, domain.MsgContactNotConfigured, ae.Message)
	sender.AssertNotCalled(t, "Send")
}

func TestContactValidation(t *testing.T) {
	cases := []struct {
		name string
		req  domain.ContactRequest
	}{
		{"empty name", domain.ContactRequest{Name: "", Email: "a@b.c", Message: "hi", Budget: "mvp"}},
		{"whitespace name", domain.ContactRequest{Name: "   ", Email: "a@b.c", Message: "hi", Budget: "mvp"}},
		{"invalid email", domain.ContactRequest{Name: "Jo", Email: "not-an-email", Message: "hi", Budget: "mvp"}},
		{"missing message", domain.ContactRequest{Name: "Jo", Email: "a@b.c", Message: "", Budget: "mvp"}},
		{"missing budget", domain.ContactRequest{Name: "Jo", Email: "a@b.c", Message: "hi", Budget: ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := new(MockSender)
			uc := usecase.NewContactUsecase(fullConfig(), sender, newValidator())

			err := uc.SendInquiry(context.Background(), &tc.req)

			ae := appErr(t, err)
			assert.Equal(t, 400, ae.Code)
			assert.Equal(t, domain.MsgContactInvalid, ae.Message)
			sender.AssertNotCalled(t, "Send")
		})
	}
}

func TestContactDispatch(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(fullConfig(), sender, newValidator())

	var sent email.Message
	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).
		Return(nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

	req := &domain.ContactRequest{
		Name:    "Jo",
		Email:   "jo@x.com",
		Company: "",
		Phone:   "",
		Message: "Hello",
		Budget:  "webflow",
	}
	err := uc.SendInquiry(context.Background(), req)

	assert.NoError(t, err)
	sender.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, "site@studio.dev", sent.From)
	assert.Equal(t, "hello@studio.dev", sent.To)
	assert.Equal(t, "jo@x.com", sent.ReplyTo)
	assert.Equal(t, "New contact form inquiry from Jo", sent.Subject)
	assert.Equal(t,
		"Name: Jo\nEmail: jo@x.com\nCompany: N/A\nPhone: N/A\nBudget: webflow\n\nMessage:\nHello",
		sent.Text)
}

func TestContactDispatchKeepsOptionalFields(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(fullConfig(), sender, newValidator())

	var sent email.Message
	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).
		Return(nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

	req := &domain.ContactRequest{
		Name:    "  Jo  ",
		Email:   " jo@x.com ",
		Company: "Acme",
		Phone:   "(123) 456-7890",
		Message: "Hello",
		Budget:  "mvp",
	}
	err := uc.SendInquiry(context.Background(), req)

	assert.NoError(t, err)
	assert.Contains(t, sent.Text, "Company: Acme")
	assert.Contains(t, sent.Text, "Phone: (123) 456-7890")
	// Fields are trimmed before composing
	assert.Contains(t, sent.Text, "Name: Jo\n")
	assert.Equal(t, "jo@x.com", sent.ReplyTo)
}

func TestContactDispatchFailure(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(fullConfig(), sender, newValidator())

	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("provider down"))

	req := &domain.ContactRequest{
		Name: "Jo", Email: "jo@x.com", Message: "Hello", Budget: "webflow",
	}
	err := uc.SendInquiry(context.Background(), req)

	ae := appErr(t, err)
	assert.Equal(t, 500, ae.Code)
	// Generic failure, not the configuration message
	assert.Equal(t, domain.MsgContactFailed, ae.Message)
}

func TestSubscribeConfigurationGuard(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewSubscriptionUsecase(&config.Config{}, sender)

	err := uc.Subscribe(context.Background(), &domain.SubscriptionRequest{Email: "x@y.com"})

	ae := appErr(t, err)
	assert.Equal(t, 500, ae.Code)
	assert.Equal(t, domain.MsgSubscribeNotConfigured, ae.Message)
}

func TestSubscribeValidation(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewSubscriptionUsecase(fullConfig(), sender)

	for _, bad := range []string{"", "a", "a@b", "   "} {
		err := uc.Subscribe(context.Background(), &domain.SubscriptionRequest{Email: domain.Text(bad)})

		ae := appErr(t, err)
		assert.Equal(t, 400, ae.Code, "email %q", bad)
		assert.Equal(t, domain.MsgSubscribeInvalid, ae.Message)
	}
	sender.AssertNotCalled(t, "Send")
}

func TestSubscribeRecipientFallback(t *testing.T) {
	// No dedicated newsletter inbox configured: fall back to the
	// contact inbox.
	sender := new(MockSender)
	uc := usecase.NewSubscriptionUsecase(fullConfig(), sender)

	var sent email.Message
	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).
		Return(nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

	err := uc.Subscribe(context.Background(), &domain.SubscriptionRequest{Email: "x@y.com"})

	assert.NoError(t, err)
	assert.Equal(t, "hello@studio.dev", sent.To)
	assert.Equal(t, "New blog subscription request", sent.Subject)
	assert.Equal(t, "Subscriber email: x@y.com", sent.Text)
}

func TestSubscribeDedicatedRecipient(t *testing.T) {
	cfg := fullConfig()
	cfg.SubscribeToEmail = "blog@studio.dev"
	sender := new(MockSender)
	uc := usecase.NewSubscriptionUsecase(cfg, sender)

	var sent email.Message
	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).
		Return(nil).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(email.Message)
		})

	err := uc.Subscribe(context.Background(), &domain.SubscriptionRequest{Email: "x@y.com"})

	assert.NoError(t, err)
	assert.Equal(t, "blog@studio.dev", sent.To)
}

func TestSubscribeDispatchFailure(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewSubscriptionUsecase(fullConfig(), sender)

	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("provider down"))

	err := uc.Subscribe(context.Background(), &domain.SubscriptionRequest{Email: "x@y.com"})

	ae := appErr(t, err)
	assert.Equal(t, 500, ae.Code)
	assert.Equal(t, domain.MsgSubscribeFailed, ae.Message)
}
