package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	portssvc "github.com/ktfabrics/khata_ledger_app/internal/core/ports/services"
	"github.com/ktfabrics/khata_ledger_app/internal/dto"
	"github.com/ktfabrics/khata_ledger_app/internal/middleware"
)

// PartyHandler handles HTTP requests for customers and vendors.
type PartyHandler struct {
	partyService portssvc.PartySvcFacade
}

// NewPartyHandler creates a new PartyHandler.
func NewPartyHandler(ps portssvc.PartySvcFacade) *PartyHandler {
	return &PartyHandler{partyService: ps}
}

// RegisterPartyRoutes registers party routes on the given group.
func (h *PartyHandler) RegisterPartyRoutes(rg *gin.RouterGroup) {
	parties := rg.Group("/party")
	{
		parties.GET("", h.listParties)
		parties.POST("", h.createParty)
	}
}

// listParties godoc
// @Summary List parties
// @Description Retrieves all customers and vendors ordered by name.
// @Tags parties
// @Produce json
// @Success 200 {object} dto.ListPartiesResponse
// @Security BearerAuth
// @Router /api/ledger/party [get]
func (h *PartyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	parties, err := h.partyService.ListParties(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch parties", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch parties", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ListPartiesResponse{Parties: dto.ToPartyResponses(parties)})
}

// createParty godoc
// @Summary Create a party
// @Description Creates a new customer or vendor.
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.CreatePartyResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/ledger/party [post]
func (h *PartyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body for create party", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	party, err := h.partyService.CreateParty(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
			return
		}
		logger.Error("Failed to create party", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create party", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.CreatePartyResponse{Party: dto.ToPartyResponse(party)})
}
