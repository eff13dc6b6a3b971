package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jmoiron/sqlx/types"
	"github.com/shopspring/decimal"
)

// TransactionExtraData extra data
type TransactionExtraData map[string]interface{}

// NewTransactionExtra new transaction extra instance
func NewTransactionExtra() TransactionExtraData {
	return make(TransactionExtraData)
}

// Put put data
func (t TransactionExtraData) Put(key string, value interface{}) {
	t[key] = value
}

// Format format as []byte by default
func (t TransactionExtraData) Format() []byte {
	bs, e := json.Marshal(t)
	if e != nil {
		return []byte("{}")
	}

	return bs
}

// Transaction record emitted by every state changing operation, persisted
// for reporting
type Transaction struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Action    ActionType      `json:"action"`
	TraceID   string          `sql:"size:36;unique_index:idx_transactions_trace" json:"trace_id"`
	UserID    string          `sql:"size:36;index:idx_transactions_user" json:"user_id"`
	Symbol    string          `sql:"size:20" json:"symbol,omitempty"`
	Amount    decimal.Decimal `sql:"type:decimal(32,8)" json:"amount"`
	Data      types.JSONText  `sql:"type:TEXT" json:"data,omitempty"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// BuildTransaction build a transaction record
func BuildTransaction(action ActionType, traceID, userID, symbol string, amount decimal.Decimal, extra TransactionExtraData) *Transaction {
	tx := &Transaction{
		Action:  action,
		TraceID: traceID,
		UserID:  userID,
		Symbol:  symbol,
		Amount:  amount,
	}

	if extra != nil {
		tx.Data = extra.Format()
	}

	return tx
}

// ITransactionStore transaction store interface
type ITransactionStore interface {
	Create(ctx context.Context, tx *db.DB, transaction *Transaction) error
	FindByTraceID(ctx context.Context, traceID string) (*Transaction, error)
	List(ctx context.Context, offset time.Time, limit int) ([]*Transaction, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*Transaction, error)
}
