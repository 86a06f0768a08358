package handlers

import (
	"errors"
	"io"
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

// ContactHandler exposes the contact funnel: tenants open a lead on a house,
// admins move it through the funnel.
type ContactHandler struct {
	usecase usecase.IContactUseCase
}

func NewContactHandler(uc usecase.IContactUseCase) *ContactHandler {
	return &ContactHandler{usecase: uc}
}

// InitiateContact records a lead and returns the owner's phone. Anonymous
// visitors are allowed; a session only attaches the tenant id.
// @Summary      Request an owner's phone number
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id       path      string                          true  "House ID"
// @Param        contact  body      request.InitiateContactRequest  true  "Tenant details"
// @Success      201      {object}  response.ContactReceiptResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /houses/{id}/contacts [post]
func (h *ContactHandler) InitiateContact(c *gin.Context) {
	houseID := c.Param("id")

	var req request.InitiateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cmd := usecase.InitiateContactCommand{
		HouseID:     houseID,
		TenantName:  req.TenantName,
		TenantPhone: req.TenantPhone,
	}
	if s, ok := middleware.SessionFrom(c); ok {
		cmd.TenantID = s.UserID
	}

	receipt, err := h.usecase.InitiateContact(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[contact][handler] initiate failed house_id=%s err=%v", houseID, err)
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contact][handler] initiate success contact_id=%s house_id=%s", receipt.Contact.ID, houseID)
	c.JSON(http.StatusCreated, response.FromContactReceipt(receipt))
}

// @Summary      List contacts
// @Tags         admin
// @Produce      json
// @Param        status    query     string  false  "Funnel stage"
// @Param        owner_id  query     string  false  "Owner ID"
// @Success      200       {array}   response.ContactSummaryResponse
// @Router       /admin/contacts [get]
// @Security     Bearer
func (h *ContactHandler) ListContacts(c *gin.Context) {
	filter := interfaces.ContactFilter{
		Status:  entities.ContactStatus(c.Query("status")),
		OwnerID: c.Query("owner_id"),
	}
	contacts, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[contact][handler] list failed status=%s err=%v", filter.Status, err)
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContactSummaries(contacts))
}

func (h *ContactHandler) GetContact(c *gin.Context) {
	id := c.Param("id")
	contact, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[contact][handler] get failed contact_id=%s err=%v", id, err)
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContactSummary(contact))
}

// AdvanceContact moves a contact one stage forward. The body is optional.
// @Summary      Advance a contact in the funnel
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true   "Contact ID"
// @Param        advance  body      request.AdvanceContactRequest  false  "Expected next stage"
// @Success      200      {object}  response.AdvanceContactResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /admin/contacts/{id}/advance [patch]
// @Security     Bearer
func (h *ContactHandler) AdvanceContact(c *gin.Context) {
	id := c.Param("id")

	var req request.AdvanceContactRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[contact][handler] advance start contact_id=%s requested=%q", id, req.Status)
	res, err := h.usecase.AdvanceContact(c.Request.Context(), id, entities.ContactStatus(req.Status))
	if err != nil {
		log.Printf("[contact][handler] advance failed contact_id=%s err=%v", id, err)
		appErr := mapContactError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[contact][handler] advance success contact_id=%s status=%s commission=%t", id, res.Contact.Status, res.Commission != nil)
	c.JSON(http.StatusOK, response.FromAdvanceResult(res))
}

func mapContactError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHouseNotFound):
		return pkg.NewDomainErrorSimple("HOUSE_NOT_FOUND", "House not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidContactID), errors.Is(err, usecase.ErrInvalidHouseID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingTenantDetails):
		return pkg.NewDomainErrorSimple("MISSING_TENANT_DETAILS", "Tenant name and phone are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidContactStatus):
		return pkg.NewDomainErrorSimple("INVALID_CONTACT_STATUS", "Unknown contact status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContactFunnelCompleted):
		return pkg.NewDomainErrorSimple("CONTACT_FUNNEL_COMPLETED", "Contact is already rental_confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidContactTransition):
		return pkg.NewDomainErrorSimple("INVALID_CONTACT_TRANSITION", "Contacts only move to the next stage", http.StatusConflict)
	case errors.Is(err, usecase.ErrContactStatusConflict):
		return pkg.NewDomainErrorSimple("CONTACT_STATUS_CONFLICT", "Contact was updated concurrently", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
