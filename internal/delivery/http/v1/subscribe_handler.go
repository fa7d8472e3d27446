package v1

import (
	"go-studio-backend/internal/delivery/http/response"
	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SubscribeHandler struct {
	subscriptionUC domain.SubscriptionUsecase
}

// NewSubscribeHandler registers the newsletter intake route (public, no auth)
func NewSubscribeHandler(public *gin.RouterGroup, subscriptionUC domain.SubscriptionUsecase) {
	handler := &SubscribeHandler{
		subscriptionUC: subscriptionUC,
	}

	public.POST("/subscribe", handler.SubmitSubscription)
}

// SubmitSubscription godoc
// @Summary      Subscribe to the Blog
// @Description  Validate a newsletter signup and forward it to the studio inbox. Public endpoint.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        subscription  body      domain.SubscriptionRequest  true  "Subscription Data"
// @Success      200           {object}  response.SuccessBody
// @Failure      400           {object}  response.ErrorBody
// @Failure      500           {object}  response.ErrorBody
// @Router       /subscribe [post]
func (h *SubscribeHandler) SubmitSubscription(c *gin.Context) {
	var req domain.SubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if guardErr := h.subscriptionUC.Ready(); guardErr != nil {
			c.Error(guardErr)
			return
		}
		c.Error(apperror.Internal(domain.MsgSubscribeFailed, err))
		return
	}

	if err := h.subscriptionUC.Subscribe(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.OK(c)
}
