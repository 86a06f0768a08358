package handlers

import (
	"errors"
	"log"
	"loki/internal/adapter/http/dto/request"
	"loki/internal/adapter/http/dto/response"
	"loki/internal/adapter/http/middleware"
	"loki/internal/domain/entities"
	"loki/internal/usecase"
	"loki/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)
	p, err := h.usecase.GetByID(c.Request.Context(), session.UserID)
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

func (h *ProfileHandler) PutMyProfile(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)

	var req request.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.Upsert(c.Request.Context(), usecase.UpsertProfileCommand{
		ID:       session.UserID,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     entities.Role(req.Role),
	})
	if err != nil {
		log.Printf("[profile][handler] upsert failed user_id=%s err=%v", session.UserID, err)
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(p))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProfileID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProfile):
		return pkg.NewDomainErrorSimple("INVALID_PROFILE", "Full name and phone are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoleNotAssignable):
		return pkg.NewDomainErrorSimple("ROLE_NOT_ASSIGNABLE", "Role must be tenant or owner", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
