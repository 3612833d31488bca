package handlers

import (
	"finance_tracker/internal/repository"
	"finance_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Ledger   *service.LedgerService
	Sessions *service.SessionProvider
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return NewHandlerWithStore(repository.NewTransactionRepository(db))
}

// NewHandlerWithStore builds a handler over an explicit storage handle.
// Tests use this with an in-memory store.
func NewHandlerWithStore(store service.TransactionStore) *Handler {
	return &Handler{
		Ledger:   service.NewLedgerService(store),
		Sessions: service.NewSessionProvider(),
	}
}

// sessionID extracts the session token placed in the context by the
// RequireSession middleware.
func sessionID(c *gin.Context) (string, bool) {
	v, ok := c.Get("session_id")
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok && token != ""
}
