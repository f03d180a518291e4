package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamehub-backend/internal/models"
	"gamehub-backend/internal/services"
)

type GameHandler struct {
	gameAPI *services.GameAPI
	wallets *services.WalletService
}

func NewGameHandler(gameAPI *services.GameAPI, wallets *services.WalletService) *GameHandler {
	return &GameHandler{
		gameAPI: gameAPI,
		wallets: wallets,
	}
}

func (h *GameHandler) SubmitEntry(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.EntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid wager",
			"details": err.Error(),
		})
		return
	}

	entry, balance, err := h.gameAPI.SubmitEntry(userID, req.Wager)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, services.ErrGameClosed) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error":   "Failed to submit entry",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"entry":   entry,
		"balance": balance,
	})
}

func (h *GameHandler) GetSnapshot(c *gin.Context) {
	state := h.gameAPI.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"snapshot": state,
	})
}

func (h *GameHandler) GetReport(c *gin.Context) {
	entries := h.gameAPI.ReportEntries()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"report":  entries,
		"count":   len(entries),
	})
}

func (h *GameHandler) GetBalance(c *gin.Context) {
	userID := c.GetString("user_id")

	wallet, err := h.wallets.Wallet(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get wallet",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"balance": models.BalanceResponse{
			UserID:        wallet.UserID,
			Balance:       wallet.Balance.String(),
			TotalCredited: wallet.TotalCredited.String(),
			TotalDebited:  wallet.TotalDebited.String(),
		},
	})
}

func (h *GameHandler) GetTransactions(c *gin.Context) {
	userID := c.GetString("user_id")

	limitStr := c.DefaultQuery("limit", "50")
	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 50
	}

	transactions, err := h.wallets.Transactions(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to get transactions",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"transactions": transactions,
		"count":        len(transactions),
	})
}
