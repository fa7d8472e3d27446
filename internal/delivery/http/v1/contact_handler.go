package v1

import (
	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact intake route (public, no auth)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate a work inquiry and forward it to the studio inbox. Public endpoint.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.SuccessBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Parse failures share the generic error path, but a missing
		// configuration still takes precedence over the payload.
		if guardErr := h.contactUC.Ready(); guardErr != nil {
			c.Error(guardErr)
			return
		}
		c.Error(apperror.Internal(domain.MsgContactFailed, err))
		return
	}

	if err := h.contactUC.SendInquiry(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.OK(c)
}
