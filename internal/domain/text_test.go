package domain_test

import (
	"encoding/json"
	"testing"

	"go-studio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestTextCoercesNonStrings(t *testing.T) {
	var req domain.ContactRequest
	err := json.Unmarshal([]byte(`{
		"name": 123,
		"email": ["a"],
		"company": null,
		"phone": {"x": 1},
		"message": "hi",
		"budget": true
	}`), &req)

	assert.NoError(t, err)
	assert.Equal(t, "", req.Name.String())
	assert.Equal(t, "", req.Email.String())
	assert.Equal(t, "", req.Company.String())
	assert.Equal(t, "", req.Phone.String())
	assert.Equal(t, "hi", req.Message.String())
	assert.Equal(t, "", req.Budget.String())
}

func TestTextKeepsStrings(t *testing.T) {
	var req domain.SubscriptionRequest
	err := json.Unmarshal([]byte(`{"email":" x@y.com "}`), &req)

	assert.NoError(t, err)
	assert.Equal(t, " x@y.com ", req.Email.String())
}
