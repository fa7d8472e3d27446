package domain

import "context"

// ContactRequest represents a contact form submission. Company and Phone
// are optional and substituted with "N/A" in the outbound message.
type ContactRequest struct {
	Name    Text `json:"name"`
	Email   Text `json:"email"`
	Company Text `json:"company"`
	Phone   Text `json:"phone"`
	Message Text `json:"message"`
	Budget  Text `json:"budget"`
}

// Budget tokens offered by the contact form. The intake only requires a
// non-empty budget; the tokens are advisory for clients.
const (
	BudgetSubscription = "subscription"
	BudgetWebflow      = "webflow"
	BudgetMVP          = "mvp"
	BudgetNotSure      = "notsure"
)

// Client-facing messages of the contact intake. These are part of the
// public contract and must not change wording.
const (
	MsgContactNotConfigured = "Contact form email service is not configured."
	MsgContactInvalid       = "Please fill in name, valid email, message, and budget."
	MsgContactFailed        = "Something went wrong while sending your inquiry."
)

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// Ready is the configuration guard. It returns the endpoint's fixed
	// service-unavailable error when email settings are missing, which
	// takes precedence over any payload problem.
	Ready() error
	// SendInquiry validates the submission and forwards it to the studio
	// inbox. Failures are *apperror.AppError values carrying the exact
	// client-facing message.
	SendInquiry(ctx context.Context, req *ContactRequest) error
}
