package repository

import (
	"context"
	"errors"
	"fmt"

	"finance_tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Insert stores a single transaction row. The id and signed amount are
// computed by the caller; the row is never updated afterwards.
func (r *TransactionRepository) Insert(ctx context.Context, tx *domain.Transaction) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO transactions (id, title, amount, session_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		tx.ID, tx.Title, tx.Amount, tx.SessionID,
	).Scan(&tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListBySession returns every transaction owned by the session, oldest first.
func (r *TransactionRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, amount, session_id, created_at
		 FROM transactions
		 WHERE session_id = $1
		 ORDER BY created_at`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Transaction, 0)
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.Title, &tx.Amount, &tx.SessionID, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		result = append(result, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return result, nil
}

// GetBySessionAndID returns the transaction matching both id and session,
// or nil when no such row exists. A row owned by another session is
// indistinguishable from a missing one.
func (r *TransactionRepository) GetBySessionAndID(ctx context.Context, sessionID, id string) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.QueryRow(ctx,
		`SELECT id, title, amount, session_id, created_at
		 FROM transactions
		 WHERE id = $1 AND session_id = $2`,
		id, sessionID,
	).Scan(&tx.ID, &tx.Title, &tx.Amount, &tx.SessionID, &tx.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &tx, nil
}

// SumBySession returns the signed sum over the session's transactions.
// SUM over zero rows is NULL in Postgres, so the empty case is coalesced
// to 0 in the query itself.
func (r *TransactionRepository) SumBySession(ctx context.Context, sessionID string) (int64, error) {
	var sum int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)
		 FROM transactions
		 WHERE session_id = $1`,
		sessionID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum transactions: %w", err)
	}
	return sum, nil
}
