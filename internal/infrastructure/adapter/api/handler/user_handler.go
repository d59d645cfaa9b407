package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/party-bank/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/party-bank/internal/domain/port/core"
	"github.com/amirhossein-jamali/party-bank/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/party-bank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Register handles the POST /user endpoint
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userUseCase.RegisterUser(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.logger, "register_user", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// GetBalance handles the GET /user/{userId}/balance endpoint
func (h *UserHandler) GetBalance(c *gin.Context) {
	balance, err := h.userUseCase.GetUserBalance(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, "get_balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceResponse(balance))
}

// ModifyBalance handles the POST /user/{userId}/transaction endpoint
func (h *UserHandler) ModifyBalance(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	description := req.Description
	if description == "" {
		description = "Manual adjustment"
	}

	change, err := h.userUseCase.ModifyBalance(c.Request.Context(), c.Param("userId"), req.Amount, entity.TypeAdjustment, description)
	if err != nil {
		respondError(c, h.logger, "modify_balance", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBalanceChangeResponse(change))
}
