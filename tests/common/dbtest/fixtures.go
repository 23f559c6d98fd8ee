//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ReferenceUserIDs are present after SeedReferenceData and ResetDB.
var ReferenceUserIDs = []int64{1, 2, 3, 4}

func CreateTestUser(t *testing.T, db DBLike, id int64, name string) int64 {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO users (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING", id, name)
	require.NoError(t, err)
	return id
}

func CountPaymentIntentions(t *testing.T, db DBLike, payerID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM payment_intentions WHERE payer_id = $1", payerID).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(db DBLike) error {
	ctx := context.Background()

	for _, id := range ReferenceUserIDs {
		if _, err := db.Exec(ctx,
			"INSERT INTO users (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING",
			id, fmt.Sprintf("user-%d", id)); err != nil {
			return err
		}
	}
	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := db.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil || len(tables) == 0 {
			truncateSQL.Store("")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := db.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(db)
}
