package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/joy-trading/billing-server/internal/config"
	"github.com/joy-trading/billing-server/internal/storage/customer"
	"github.com/joy-trading/billing-server/internal/storage/fish"
	"github.com/joy-trading/billing-server/internal/storage/transaction"
)

// Storage bundles the database handle and the per-entity tables. Tables
// exposed here read with the plain handle; mutations go through Write so
// they run inside a single database transaction.
type Storage struct {
	DB           *sql.DB
	bdb          bob.DB
	Customers    customer.ICustomerTable
	Fish         fish.IFishTable
	Transactions transaction.ITransactionTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage.sql.Open")
	}

	bdb := bob.NewDB(db)
	return &Storage{
		DB:           db,
		bdb:          bdb,
		Customers:    customer.NewTable(bdb),
		Fish:         fish.NewTable(bdb),
		Transactions: transaction.NewTable(bdb),
	}
}

// Write opens a database transaction and returns a Writer whose tables all
// run inside it. The caller must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bdb.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
