package repository

import (
	"context"

	"payment-intention-service/internal/infra"
	"payment-intention-service/internal/infra/db"
)

const userExistsSQL = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

type UserDirectory struct {
	db db.DBTX
}

func NewUserDirectory(dbtx db.DBTX) *UserDirectory {
	return &UserDirectory{db: dbtx}
}

func (d *UserDirectory) Exists(ctx context.Context, userID int64) (bool, error) {
	var exists bool
	if err := d.db.QueryRow(ctx, userExistsSQL, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to resolve user", err, infra.KindDBFailure)
	}
	return exists, nil
}
