package transaction

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/joy-trading/billing-server/internal/ledger"
	"github.com/joy-trading/billing-server/internal/money"
)

var _ ITransactionTable = (*Table)(nil)

// Table provides access to the transactions table. Line items and payments
// are embedded as JSON documents so a transaction and its ledger update as
// one row, mirroring the single-record atomicity the ledger invariant needs.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table running against the given executor, which may be
// a database handle or an open transaction.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

type transactionRow struct {
	ID             uuid.UUID `db:"id"`
	CustomerName   string    `db:"customer_name"`
	Items          []byte    `db:"items"`
	TotalPaise     int64     `db:"total_paise"`
	PaidPaise      int64     `db:"paid_paise"`
	RemainingPaise int64     `db:"remaining_paise"`
	Payments       []byte    `db:"payments"`
	CreatedAt      time.Time `db:"created_at"`
}

var transactionColumns = []any{
	"id", "customer_name", "items", "total_paise",
	"paid_paise", "remaining_paise", "payments", "created_at",
}

func (t *Table) Insert(ctx context.Context, tx *ledger.Transaction) (uuid.UUID, error) {
	items, err := json.Marshal(tx.Items)
	if err != nil {
		return uuid.Nil, err
	}
	payments, err := json.Marshal(tx.Payments)
	if err != nil {
		return uuid.Nil, err
	}

	q := psql.Insert(
		im.Into("transactions",
			"customer_name", "items", "total_paise",
			"paid_paise", "remaining_paise", "payments", "created_at"),
		im.Values(psql.Arg(
			tx.CustomerName, string(items), int64(tx.TotalPaise),
			int64(tx.PaidPaise), int64(tx.RemainingPaise), string(payments), tx.CreatedAt)),
		im.Returning("id"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[struct {
		ID uuid.UUID `db:"id"`
	}]())
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

func (t *Table) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*ledger.Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}
	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	return rowToTransaction(&row)
}

func (t *Table) List(ctx context.Context, filter *TransactionFilter) ([]*ledger.Transaction, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	queryMods = append(queryMods,
		sm.Columns(transactionColumns...),
		sm.From("transactions"),
	)
	if filter != nil && filter.CustomerName != nil {
		queryMods = append(queryMods, sm.Where(
			psql.Raw("lower(customer_name) = lower(?)", *filter.CustomerName)))
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*ledger.Transaction, len(rows))
	for i := range rows {
		tx, err := rowToTransaction(&rows[i])
		if err != nil {
			return nil, err
		}
		result[i] = tx
	}
	return result, nil
}

func (t *Table) Update(ctx context.Context, id uuid.UUID, tx *ledger.Transaction) error {
	payments, err := json.Marshal(tx.Payments)
	if err != nil {
		return err
	}

	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("paid_paise").ToArg(int64(tx.PaidPaise)),
		um.SetCol("remaining_paise").ToArg(int64(tx.RemainingPaise)),
		um.SetCol("payments").ToArg(string(payments)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err = bob.Exec(ctx, t.exec, q)
	return err
}

func rowToTransaction(row *transactionRow) (*ledger.Transaction, error) {
	var items []ledger.LineItem
	if err := json.Unmarshal(row.Items, &items); err != nil {
		return nil, err
	}
	var payments []ledger.Payment
	if err := json.Unmarshal(row.Payments, &payments); err != nil {
		return nil, err
	}

	return &ledger.Transaction{
		ID:             row.ID,
		CustomerName:   row.CustomerName,
		Items:          items,
		TotalPaise:     money.Money(row.TotalPaise),
		PaidPaise:      money.Money(row.PaidPaise),
		RemainingPaise: money.Money(row.RemainingPaise),
		Payments:       payments,
		CreatedAt:      row.CreatedAt,
	}, nil
}
