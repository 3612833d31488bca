package handlers

import (
	"errors"
	"net/http"

	"finance_tracker/internal/http/middleware"
	"finance_tracker/internal/logger"
	"finance_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateTransaction inserts one transaction for the caller's session,
// minting the session cookie when the request carries none. Responds
// 201 with an empty body; the created row is not returned.
func (h *Handler) CreateTransaction(c *gin.Context) {
	var in service.CreateTransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	// validation runs before the session cookie is minted and before
	// anything reaches storage
	if err := in.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token := h.Sessions.ResolveOrMint(c)

	if err := h.Ledger.Create(c.Request.Context(), token, in); err != nil {
		logger.Error("create transaction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create transaction"})
		return
	}

	middleware.LedgerCreates.WithLabelValues(in.Type).Inc()
	c.Status(http.StatusCreated)
}

// ListTransactions returns every transaction owned by the session.
func (h *Handler) ListTransactions(c *gin.Context) {
	token, ok := sessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	transactions, err := h.Ledger.List(c.Request.Context(), token)
	if err != nil {
		logger.Error("list transactions failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetTransaction returns a single transaction by id, or null when the
// (id, session) pair matches nothing. A row owned by another session is
// reported exactly like a missing one.
func (h *Handler) GetTransaction(c *gin.Context) {
	token, ok := sessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	transaction, err := h.Ledger.Get(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		logger.Error("get transaction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// GetSummary returns the signed sum over the session's transactions.
func (h *Handler) GetSummary(c *gin.Context) {
	token, ok := sessionID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	amount, err := h.Ledger.Summary(c.Request.Context(), token)
	if err != nil {
		logger.Error("summary failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": gin.H{"amount": amount}})
}
