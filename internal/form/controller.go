package form

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
)

// Controller drives one form's submission lifecycle against an intake
// endpoint: serialize the payload, POST it, and map the outcome onto a
// Status. Two form instances (contact and newsletter) are fully
// independent; each owns its own Controller.
type Controller struct {
	client      *http.Client
	url         string
	successMsg  string
	fallbackMsg string
}

// NewController creates a controller for one intake endpoint. successMsg
// is shown on a 200 response; fallbackMsg is shown when an error response
// carries no message or the call fails outright.
func NewController(client *http.Client, url, successMsg, fallbackMsg string) *Controller {
	if client == nil {
		client = http.DefaultClient
	}
	return &Controller{
		client:      client,
		url:         url,
		successMsg:  successMsg,
		fallbackMsg: fallbackMsg,
	}
}

// Submit runs one submission attempt and returns the settled status. The
// caller is responsible for rendering Submitting() while the call is in
// flight and for keeping the submit control disabled until it returns.
func (c *Controller) Submit(ctx context.Context, payload any) Status {
	body, err := json.Marshal(payload)
	if err != nil {
		return Error(c.fallbackMsg)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Error(c.fallbackMsg)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// Network failure is indistinguishable from an error response
		// without a message.
		return Error(c.fallbackMsg)
	}
	defer resp.Body.Close()

	var out struct {
		Error string `json:"error"`
	}
	// A missing or unparsable body falls back to the fixed message.
	_ = json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return Error(out.Error)
		}
		return Error(c.fallbackMsg)
	}

	return Success(c.successMsg)
}
