//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"payment-intention-service/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "anything else", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err)
			assert.True(t, infra.IsKind(err, tc.want), "got %v", err)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("explicit kind overrides classification", func(t *testing.T) {
		err := infra.WrapRepoErr("user missing", errors.New("x"), infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("non repository errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
	})
}
