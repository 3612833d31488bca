package domain

import "time"

// Transaction types accepted on create. The stored amount is already
// signed: credits positive, debits negative.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

type Transaction struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Amount    int64     `db:"amount" json:"amount"`
	SessionID string    `db:"session_id" json:"session_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
