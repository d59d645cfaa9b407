package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/party-bank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// GameHandler handles the mini-game endpoints
type GameHandler struct {
	game   usecase.GameUseCase
	logger coreport.Logger
}

// NewGameHandler creates a new game handler instance
func NewGameHandler(game usecase.GameUseCase, logger coreport.Logger) *GameHandler {
	return &GameHandler{
		game:   game,
		logger: logger,
	}
}

// DrawRiskCard handles POST /user/{userId}/risk-card
func (h *GameHandler) DrawRiskCard(c *gin.Context) {
	result, err := h.game.DrawRiskCard(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, "draw_risk_card", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRiskDrawResponse(result))
}

// ScanCode handles POST /user/{userId}/scan/{code}
func (h *GameHandler) ScanCode(c *gin.Context) {
	result, err := h.game.ScanCode(c.Request.Context(), c.Param("userId"), c.Param("code"))
	if err != nil {
		respondError(c, h.logger, "scan_code", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewScanResponse(result))
}

// ClaimMission handles POST /user/{userId}/missions/{traitId}/{index}/claim
func (h *GameHandler) ClaimMission(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		respondError(c, h.logger, "claim_mission", domainerr.ErrUnknownMission)
		return
	}

	// The body is optional for honor missions
	var req dto.MissionClaimRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	result, err := h.game.ClaimMission(c.Request.Context(), c.Param("userId"), c.Param("traitId"), index, req.ConfirmedBy)
	if err != nil {
		respondError(c, h.logger, "claim_mission", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMissionClaimResponse(result))
}

// ListTraits handles GET /traits
func (h *GameHandler) ListTraits(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewTraitDTOs(h.game.ListTraits()))
}

// MissionsForTrait handles GET /traits/{traitId}/missions
func (h *GameHandler) MissionsForTrait(c *gin.Context) {
	missions, err := h.game.MissionsForTrait(c.Param("traitId"))
	if err != nil {
		respondError(c, h.logger, "missions_for_trait", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMissionDTOs(missions))
}
