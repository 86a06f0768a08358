package handlers

import (
	"log"
	"loki/internal/usecase"
	"loki/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the back office counters.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		log.Printf("[dashboard][handler] stats failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}
