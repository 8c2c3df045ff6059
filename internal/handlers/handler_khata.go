package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	portssvc "github.com/ktfabrics/khata_ledger_app/internal/core/ports/services"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
	"github.com/ktfabrics/khata_ledger_app/internal/middleware"
)

// KhataHandler handles HTTP requests for account books.
type KhataHandler struct {
	khataService portssvc.KhataSvcFacade
}

// NewKhataHandler creates a new KhataHandler.
func NewKhataHandler(ks portssvc.KhataSvcFacade) *KhataHandler {
	return &KhataHandler{khataService: ks}
}

// RegisterKhataRoutes registers khata routes on the given group.
func (h *KhataHandler) RegisterKhataRoutes(rg *gin.RouterGroup) {
	khatas := rg.Group("/khata")
	{
		khatas.GET("", h.listKhatas)
		khatas.POST("", h.createKhata)
	}
}

// listKhatas godoc
// @Summary List account books
// @Description Retrieves all khatas. The list is never empty; if the store is unreachable the default khata is returned with an error field instead of a failure status.
// @Tags khatas
// @Produce json
// @Success 200 {object} dto.ListKhatasResponse
// @Security BearerAuth
// @Router /api/ledger/khata [get]
func (h *KhataHandler) listKhatas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	khatas, err := h.khataService.ListKhatas(c.Request.Context())
	if err != nil {
		// Degrade instead of failing: the frontend can always render at
		// least the default khata.
		logger.Error("Failed to fetch khatas, serving default", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.ListKhatasResponse{
			Khatas: dto.ToKhataResponses([]domain.Khata{domain.DefaultKhata()}),
			Error:  "Failed to fetch khatas, using default",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ListKhatasResponse{Khatas: dto.ToKhataResponses(khatas)})
}

// createKhata godoc
// @Summary Create an account book
// @Description Creates a new khata. The name is required after trimming whitespace.
// @Tags khatas
// @Accept json
// @Produce json
// @Param khata body dto.CreateKhataRequest true "Khata details"
// @Success 201 {object} dto.CreateKhataResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/ledger/khata [post]
func (h *KhataHandler) createKhata(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateKhataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for create khata", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	khata, err := h.khataService.CreateKhata(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
			return
		}
		logger.Error("Failed to create khata", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create khata", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateKhataResponse{Khata: dto.ToKhataResponse(khata)})
}
