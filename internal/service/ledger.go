package service

import (
	"context"
	"fmt"

	"finance_tracker/internal/domain"

	"github.com/google/uuid"
)

// ValidationError reports a request that failed schema checks. It is
// always returned before any storage access.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransactionStore is the storage handle the ledger operates on.
// Rows are insert-only: there is deliberately no update or delete.
type TransactionStore interface {
	Insert(ctx context.Context, tx *domain.Transaction) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.Transaction, error)
	GetBySessionAndID(ctx context.Context, sessionID, id string) (*domain.Transaction, error)
	SumBySession(ctx context.Context, sessionID string) (int64, error)
}

// CreateTransactionInput carries the client-supplied fields for create.
// Amount is an unsigned magnitude; the stored sign is derived from Type.
type CreateTransactionInput struct {
	Title  string `json:"title"`
	Amount int64  `json:"amount"`
	Type   string `json:"type"`
}

// Validate checks the create payload against its schema.
func (in CreateTransactionInput) Validate() error {
	if in.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if in.Amount <= 0 {
		return &ValidationError{Field: "amount", Reason: "must be a positive magnitude"}
	}
	if in.Type != domain.TypeCredit && in.Type != domain.TypeDebit {
		return &ValidationError{Field: "type", Reason: "must be credit or debit"}
	}
	return nil
}

// SignedAmount returns the amount as stored: positive for credits,
// negative for debits.
func (in CreateTransactionInput) SignedAmount() int64 {
	if in.Type == domain.TypeDebit {
		return -in.Amount
	}
	return in.Amount
}

// LedgerService implements the four ledger operations. Every query and
// mutation is scoped to the caller's session; no operation can touch
// another session's rows.
type LedgerService struct {
	store TransactionStore
}

func NewLedgerService(store TransactionStore) *LedgerService {
	return &LedgerService{store: store}
}

// Create validates the input and inserts a single row with a freshly
// generated id and the signed amount.
func (s *LedgerService) Create(ctx context.Context, sessionID string, in CreateTransactionInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	tx := &domain.Transaction{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Amount:    in.SignedAmount(),
		SessionID: sessionID,
	}
	return s.store.Insert(ctx, tx)
}

// List returns every transaction owned by the session. A session with
// no rows gets an empty slice, not an error.
func (s *LedgerService) List(ctx context.Context, sessionID string) ([]domain.Transaction, error) {
	return s.store.ListBySession(ctx, sessionID)
}

// Get returns the session's transaction with the given id, or nil when
// no row matches. An id owned by another session is reported as missing
// so that existence never leaks across sessions.
func (s *LedgerService) Get(ctx context.Context, sessionID, id string) (*domain.Transaction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &ValidationError{Field: "id", Reason: "must be a UUID"}
	}
	return s.store.GetBySessionAndID(ctx, sessionID, id)
}

// Summary returns the signed sum over the session's transactions, 0 for
// a session that owns none.
func (s *LedgerService) Summary(ctx context.Context, sessionID string) (int64, error) {
	return s.store.SumBySession(ctx, sessionID)
}
