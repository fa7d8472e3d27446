package usecase

import (
	"context"
	"strings"

	"go-studio-backend/config"
	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/apperror"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/validation"
)

type subscriptionUsecase struct {
	cfg    *config.Config
	sender email.Sender
}

// NewSubscriptionUsecase creates the newsletter signup usecase.
func NewSubscriptionUsecase(cfg *config.Config, sender email.Sender) domain.SubscriptionUsecase {
	return &subscriptionUsecase{
		cfg:    cfg,
		sender: sender,
	}
}

func (uc *subscriptionUsecase) Ready() error {
	if !uc.cfg.SubscribeConfigured() {
		return apperror.Unavailable(domain.MsgSubscribeNotConfigured)
	}
	return nil
}

func (uc *subscriptionUsecase) Subscribe(ctx context.Context, req *domain.SubscriptionRequest) error {
	if err := uc.Ready(); err != nil {
		return err
	}

	addr := strings.TrimSpace(req.Email.String())
	if !validation.ValidEmail(addr) {
		return apperror.BadRequest(domain.MsgSubscribeInvalid)
	}

	msg := email.Message{
		From: uc.cfg.FromEmail,
		// Resolved per request: dedicated newsletter inbox first, the
		// contact inbox otherwise.
		To:      uc.cfg.SubscribeToAddress(),
		ReplyTo: addr,
		Subject: "New blog subscription request",
		Text:    "Subscriber email: " + addr,
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return apperror.Internal(domain.MsgSubscribeFailed, err)
	}
	return nil
}
