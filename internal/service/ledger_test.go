package service

import (
	"context"
	"testing"

	"finance_tracker/internal/domain"

	"github.com/google/uuid"
)

// memStore is an in-memory TransactionStore for unit tests.
type memStore struct {
	rows []domain.Transaction
}

func (m *memStore) Insert(_ context.Context, tx *domain.Transaction) error {
	m.rows = append(m.rows, *tx)
	return nil
}

func (m *memStore) ListBySession(_ context.Context, sessionID string) ([]domain.Transaction, error) {
	result := make([]domain.Transaction, 0)
	for _, tx := range m.rows {
		if tx.SessionID == sessionID {
			result = append(result, tx)
		}
	}
	return result, nil
}

func (m *memStore) GetBySessionAndID(_ context.Context, sessionID, id string) (*domain.Transaction, error) {
	for _, tx := range m.rows {
		if tx.ID == id && tx.SessionID == sessionID {
			found := tx
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memStore) SumBySession(_ context.Context, sessionID string) (int64, error) {
	var sum int64
	for _, tx := range m.rows {
		if tx.SessionID == sessionID {
			sum += tx.Amount
		}
	}
	return sum, nil
}

func TestCreateTransactionInputValidate(t *testing.T) {
	cases := []struct {
		name    string
		in      CreateTransactionInput
		wantErr bool
	}{
		{"valid credit", CreateTransactionInput{Title: "salary", Amount: 5000, Type: "credit"}, false},
		{"valid debit", CreateTransactionInput{Title: "rent", Amount: 2000, Type: "debit"}, false},
		{"missing title", CreateTransactionInput{Amount: 5000, Type: "credit"}, true},
		{"missing amount", CreateTransactionInput{Title: "salary", Type: "credit"}, true},
		{"negative amount", CreateTransactionInput{Title: "salary", Amount: -10, Type: "credit"}, true},
		{"invalid type", CreateTransactionInput{Title: "salary", Amount: 5000, Type: "invalid"}, true},
		{"missing type", CreateTransactionInput{Title: "salary", Amount: 5000}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr {
				if _, ok := err.(*ValidationError); !ok {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
			}
		})
	}
}

func TestSignedAmount(t *testing.T) {
	credit := CreateTransactionInput{Title: "x", Amount: 5000, Type: "credit"}
	if got := credit.SignedAmount(); got != 5000 {
		t.Fatalf("credit: expected 5000, got %d", got)
	}

	debit := CreateTransactionInput{Title: "x", Amount: 2000, Type: "debit"}
	if got := debit.SignedAmount(); got != -2000 {
		t.Fatalf("debit: expected -2000, got %d", got)
	}
}

func TestCreateStoresSignedAmount(t *testing.T) {
	store := &memStore{}
	svc := NewLedgerService(store)
	ctx := context.Background()

	if err := svc.Create(ctx, "session-a", CreateTransactionInput{Title: "rent", Amount: 2000, Type: "debit"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(store.rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(store.rows))
	}
	row := store.rows[0]
	if row.Amount != -2000 {
		t.Fatalf("expected stored amount -2000, got %d", row.Amount)
	}
	if row.SessionID != "session-a" {
		t.Fatalf("expected session-a, got %s", row.SessionID)
	}
	if _, err := uuid.Parse(row.ID); err != nil {
		t.Fatalf("expected UUID id, got %q: %v", row.ID, err)
	}
}

func TestCreateValidationNeverReachesStore(t *testing.T) {
	store := &memStore{}
	svc := NewLedgerService(store)

	err := svc.Create(context.Background(), "session-a", CreateTransactionInput{Title: "x", Amount: 100, Type: "invalid"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(store.rows) != 0 {
		t.Fatalf("expected no rows inserted, got %d", len(store.rows))
	}
}

func TestGetRejectsMalformedID(t *testing.T) {
	svc := NewLedgerService(&memStore{})

	_, err := svc.Get(context.Background(), "session-a", "not-a-uuid")
	if err == nil {
		t.Fatal("expected error for malformed id")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestGetDoesNotLeakAcrossSessions(t *testing.T) {
	store := &memStore{}
	svc := NewLedgerService(store)
	ctx := context.Background()

	if err := svc.Create(ctx, "session-a", CreateTransactionInput{Title: "salary", Amount: 5000, Type: "credit"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	id := store.rows[0].ID

	tx, err := svc.Get(ctx, "session-b", id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if tx != nil {
		t.Fatalf("expected nil for another session's id, got %+v", tx)
	}

	tx, err = svc.Get(ctx, "session-a", id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if tx == nil || tx.ID != id {
		t.Fatalf("expected own transaction back, got %+v", tx)
	}
}

func TestSummarySumsSignedValues(t *testing.T) {
	store := &memStore{}
	svc := NewLedgerService(store)
	ctx := context.Background()

	if err := svc.Create(ctx, "session-a", CreateTransactionInput{Title: "salary", Amount: 5000, Type: "credit"}); err != nil {
		t.Fatalf("create credit: %v", err)
	}
	if err := svc.Create(ctx, "session-a", CreateTransactionInput{Title: "rent", Amount: 2000, Type: "debit"}); err != nil {
		t.Fatalf("create debit: %v", err)
	}

	sum, err := svc.Summary(ctx, "session-a")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum != 3000 {
		t.Fatalf("expected 3000, got %d", sum)
	}
}

func TestSummaryEmptySessionIsZero(t *testing.T) {
	svc := NewLedgerService(&memStore{})

	sum, err := svc.Summary(context.Background(), "session-empty")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum != 0 {
		t.Fatalf("expected 0 for empty session, got %d", sum)
	}
}
