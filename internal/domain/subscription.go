package domain

import "context"

// SubscriptionRequest represents a newsletter signup from the site footer.
type SubscriptionRequest struct {
	Email Text `json:"email"`
}

// Client-facing messages of the subscribe intake.
const (
	MsgSubscribeNotConfigured = "Newsletter service is not configured."
	MsgSubscribeInvalid       = "Please enter a valid email address."
	MsgSubscribeFailed        = "Something went wrong while saving your subscription."
)

// SubscriptionUsecase defines the interface for newsletter signups
type SubscriptionUsecase interface {
	// Ready is the configuration guard, see ContactUsecase.Ready.
	Ready() error
	Subscribe(ctx context.Context, req *SubscriptionRequest) error
}
