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

// HouseHandler serves the public listing catalogue.
type HouseHandler struct {
	usecase usecase.IHouseUseCase
}

func NewHouseHandler(uc usecase.IHouseUseCase) *HouseHandler {
	return &HouseHandler{usecase: uc}
}

// @Summary      List houses
// @Tags         houses
// @Produce      json
// @Param        type      query     string  false  "residence, house, land or shop"
// @Param        city      query     string  false  "City"
// @Param        owner_id  query     string  false  "Owner ID"
// @Success      200       {array}   response.HouseResponse
// @Router       /houses [get]
func (h *HouseHandler) ListHouses(c *gin.Context) {
	filter := interfaces.HouseFilter{
		Type:    entities.PropertyType(c.Query("type")),
		City:    c.Query("city"),
		OwnerID: c.Query("owner_id"),
	}

	houses, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[house][handler] list failed type=%s city=%s err=%v", filter.Type, filter.City, err)
		appErr := mapHouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHouses(houses))
}

func (h *HouseHandler) GetHouse(c *gin.Context) {
	id := c.Param("id")
	house, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[house][handler] get failed house_id=%s err=%v", id, err)
		appErr := mapHouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHouse(house))
}

// CreateHouse lists a property for the signed-in owner.
func (h *HouseHandler) CreateHouse(c *gin.Context) {
	session, _ := middleware.SessionFrom(c)

	var req request.CreateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	propertyType, _ := entities.ParsePropertyType(req.Type)
	created, err := h.usecase.CreateHouse(c.Request.Context(), usecase.CreateHouseCommand{
		OwnerID:     session.UserID,
		Title:       req.Title,
		Description: req.Description,
		Type:        propertyType,
		City:        req.City,
		District:    req.District,
		Price:       req.Price,
	})
	if err != nil {
		log.Printf("[house][handler] create failed owner_id=%s err=%v", session.UserID, err)
		appErr := mapHouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[house][handler] create success house_id=%s owner_id=%s type=%s", created.ID, created.OwnerID, created.Type)
	c.JSON(http.StatusCreated, response.FromHouse(created))
}

func mapHouseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrHouseNotFound):
		return pkg.NewDomainErrorSimple("HOUSE_NOT_FOUND", "House not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidHouseID), errors.Is(err, usecase.ErrInvalidOwnerID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidHouseTitle):
		return pkg.NewDomainErrorSimple("INVALID_HOUSE_TITLE", "Title is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPropertyType):
		return pkg.NewDomainErrorSimple("INVALID_PROPERTY_TYPE", "Type must be residence, house, land or shop", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidHousePrice):
		return pkg.NewDomainErrorSimple("INVALID_HOUSE_PRICE", "Price must be greater than zero", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
