// Package account_repo provides the PostgreSQL implementation of account
// lookups.
package account_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"agent360/internal/core/apperror"
	"agent360/internal/domain/accounts"
	"agent360/internal/infrastructure/storage/postgres"
)

const accountTable = "accounts"

var accountColumns = []string{
	"id",
	"name",
	"account_number",
	"type",
	"industry",
	"phone",
	"billing_city",
	"credit_limit",
	"is_active",
}

// AccountRepo implements accounts.Repository.
type AccountRepo struct {
	db      *postgres.DB
	builder squirrel.StatementBuilderType
}

func NewAccountRepo(db *postgres.DB) *AccountRepo {
	return &AccountRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns a page of accounts and the total match count. Search
// matches name and account number case-insensitively.
func (r *AccountRepo) List(ctx context.Context, f accounts.ListFilter) ([]accounts.Account, int, error) {
	base := r.builder.Select(accountColumns...).From(accountTable)
	countQ := r.builder.Select("COUNT(*) AS total").From(accountTable)

	if f.OwnerID != "" {
		cond := squirrel.Eq{"owner_id": f.OwnerID}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"account_number": pattern},
		}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}

	q := base.
		OrderBy("name ASC", "id ASC").
		Limit(uint64(f.PageSize)).
		Offset(uint64((f.Page - 1) * f.PageSize))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var items []accounts.Account
	if err := r.db.Select(ctx, &items, "accounts.list", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("account list: %w", err)
	}

	sql, args, err = countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var row struct {
		Total int `db:"total"`
	}
	if err := r.db.Get(ctx, &row, "accounts.count", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("account count: %w", err)
	}
	return items, row.Total, nil
}

// GetByID retrieves one account.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*accounts.Account, error) {
	q := r.builder.Select(accountColumns...).
		From(accountTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var a accounts.Account
	if err := r.db.Get(ctx, &a, "accounts.get", sql, args...); err != nil {
		if postgres.NotFound(err) {
			return nil, apperror.NewNotFound("account", id)
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// Ensure interface compliance
var _ accounts.Repository = (*AccountRepo)(nil)
