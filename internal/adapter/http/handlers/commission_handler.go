package handlers

import (
	"errors"
	"log"
	"loki/internal/adapter/http/dto/request"
	"loki/internal/adapter/http/dto/response"
	"loki/internal/adapter/http/middleware"
	"loki/internal/domain/entities"
	"loki/internal/usecase"
	"loki/internal/usecase/interfaces"
	"loki/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CommissionHandler handles the commissions owners owe after a confirmed rental.
type CommissionHandler struct {
	usecase usecase.ICommissionUseCase
}

func NewCommissionHandler(uc usecase.ICommissionUseCase) *CommissionHandler {
	return &CommissionHandler{usecase: uc}
}

func (h *CommissionHandler) ListMyCommissions(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)
	h.list(c, interfaces.PaymentFilter{PayableBy: session.UserID, Status: entities.PaymentStatus(c.Query("status"))})
}

func (h *CommissionHandler) ListCommissions(c *gin.Context) {
	h.list(c, interfaces.PaymentFilter{PayableBy: c.Query("owner_id"), Status: entities.PaymentStatus(c.Query("status"))})
}

func (h *CommissionHandler) list(c *gin.Context, filter interfaces.PaymentFilter) {
	payments, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[commission][handler] list failed payable_by=%s status=%s err=%v", filter.PayableBy, filter.Status, err)
		appErr := mapCommissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCommissions(payments))
}

// PayCommission charges a pending commission through Mercado Pago.
// @Summary      Pay a commission
// @Tags         commissions
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Commission ID"
// @Param        payment  body      request.PayCommissionRequest  true  "Tokenized card"
// @Success      200      {object}  response.CommissionResponse
// @Failure      402      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /commissions/{id}/pay [post]
// @Security     Bearer
func (h *CommissionHandler) PayCommission(c *gin.Context) {
	id := c.Param("id")
	session, _ := middleware.SessionFrom(c)

	var req request.PayCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[commission][handler] invalid payload commission_id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[commission][handler] pay start commission_id=%s owner_id=%s method=%s", id, session.UserID, req.PaymentMethodID)
	paid, err := h.usecase.Pay(c.Request.Context(), usecase.PayCommissionCommand{
		PaymentID:       id,
		OwnerID:         session.UserID,
		PaymentMethodID: req.PaymentMethodID,
		Token:           req.Token,
		Installments:    req.Installments,
		PayerEmail:      req.PayerEmail,
	})
	if err != nil {
		log.Printf("[commission][handler] pay failed commission_id=%s err=%v", id, err)
		appErr := mapCommissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[commission][handler] pay success commission_id=%s provider_payment_id=%s", paid.ID, paid.ProviderPaymentID)
	c.JSON(http.StatusOK, response.FromCommission(paid))
}

func mapCommissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("COMMISSION_NOT_FOUND", "Commission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_COMMISSION_STATUS", "Unknown commission status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Commission is payable by another owner", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPaymentNotPending):
		return pkg.NewDomainErrorSimple("COMMISSION_NOT_PENDING", "Commission is already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment was not approved", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
