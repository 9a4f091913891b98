package customer

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ICustomerTable = (*Table)(nil)

// Table provides access to the customers table.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table running against the given executor, which may be
// a database handle or an open transaction.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

type customerRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
}

func (t *Table) FindByName(ctx context.Context, name string) (*Customer, error) {
	q := psql.Select(
		sm.Columns("id", "name", "phone", "address", "created_at"),
		sm.From("customers"),
		sm.Where(psql.Raw("lower(name) = lower(?)", name)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[customerRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToCustomer(&row), nil
}

func (t *Table) Insert(ctx context.Context, create *CustomerCreate) (*Customer, error) {
	q := psql.Insert(
		im.Into("customers", "name", "phone", "address"),
		im.Values(psql.Arg(create.Name, create.Phone, create.Address)),
		im.Returning("id", "name", "phone", "address", "created_at"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[customerRow]())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return rowToCustomer(&row), nil
}

func (t *Table) List(ctx context.Context) ([]*Customer, error) {
	q := psql.Select(
		sm.Columns("id", "name", "phone", "address", "created_at"),
		sm.From("customers"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[customerRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Customer, len(rows))
	for i := range rows {
		result[i] = rowToCustomer(&rows[i])
	}
	return result, nil
}

func rowToCustomer(row *customerRow) *Customer {
	return &Customer{
		ID:        row.ID,
		Name:      row.Name,
		Phone:     row.Phone,
		Address:   row.Address,
		CreatedAt: row.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
