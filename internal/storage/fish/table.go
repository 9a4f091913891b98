package fish

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IFishTable = (*Table)(nil)

// Table provides access to the fish table.
type Table struct {
	exec bob.Executor
}

// NewTable creates a Table running against the given executor, which may be
// a database handle or an open transaction.
func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

type fishRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (t *Table) FindByName(ctx context.Context, name string) (*Fish, error) {
	q := psql.Select(
		sm.Columns("id", "name", "created_at"),
		sm.From("fish"),
		sm.Where(psql.Raw("lower(name) = lower(?)", name)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[fishRow]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return rowToFish(&row), nil
}

func (t *Table) Insert(ctx context.Context, name string) (*Fish, error) {
	q := psql.Insert(
		im.Into("fish", "name"),
		im.Values(psql.Arg(name)),
		im.Returning("id", "name", "created_at"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[fishRow]())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return rowToFish(&row), nil
}

func (t *Table) List(ctx context.Context) ([]*Fish, error) {
	q := psql.Select(
		sm.Columns("id", "name", "created_at"),
		sm.From("fish"),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[fishRow]())
	if err != nil {
		return nil, err
	}
	result := make([]*Fish, len(rows))
	for i := range rows {
		result[i] = rowToFish(&rows[i])
	}
	return result, nil
}

func (t *Table) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From("fish"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func rowToFish(row *fishRow) *Fish {
	return &Fish{
		ID:        row.ID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
