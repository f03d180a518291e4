package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamehub-backend/internal/models"
	"gamehub-backend/internal/services"
)

type UserHandler struct {
	gameAPI    *services.GameAPI
	users      *services.UserService
	wallets    *services.WalletService
	jwtService *services.JWTService
}

func NewUserHandler(gameAPI *services.GameAPI, users *services.UserService, wallets *services.WalletService, jwtService *services.JWTService) *UserHandler {
	return &UserHandler{
		gameAPI:    gameAPI,
		users:      users,
		wallets:    wallets,
		jwtService: jwtService,
	}
}

// Onboard registers a user through the facade and issues a token.
func (h *UserHandler) Onboard(c *gin.Context) {
	var req models.OnboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid username",
			"details": err.Error(),
		})
		return
	}

	user, wallet, err := h.gameAPI.OnboardUser(req.Username)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to onboard user",
			"details": err.Error(),
		})
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, models.GenerateSessionID())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"wallet": gin.H{
			"balance": wallet.Balance,
		},
		"token": token,
	})
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.users.Get(userID.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	wallet, err := h.wallets.Wallet(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get wallet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"wallet": gin.H{
			"balance":        wallet.Balance,
			"total_credited": wallet.TotalCredited,
			"total_debited":  wallet.TotalDebited,
		},
	})
}
