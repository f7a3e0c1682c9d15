// Package user_repo provides the PostgreSQL implementation of user
// lookups.
package user_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"agent360/internal/domain/users"
	"agent360/internal/infrastructure/storage/postgres"
)

const userTable = "users"

// UserRepo implements users.Repository.
type UserRepo struct {
	db      *postgres.DB
	builder squirrel.StatementBuilderType
}

func NewUserRepo(db *postgres.DB) *UserRepo {
	return &UserRepo{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List returns a page of active users ordered by name plus the total
// match count. The role name comes from the joined roles table.
func (r *UserRepo) List(ctx context.Context, f users.ListFilter) ([]users.User, int, error) {
	q := r.builder.Select(
		"u.id",
		"u.name AS full_name",
		"u.email",
		"r.name AS role",
	).
		From(userTable + " u").
		LeftJoin("user_roles r ON r.id = u.role_id").
		Where(squirrel.Eq{"u.is_active": true}).
		OrderBy("u.name ASC", "u.id ASC").
		Limit(uint64(f.PageSize)).
		Offset(uint64((f.Page - 1) * f.PageSize))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var items []users.User
	if err := r.db.Select(ctx, &items, "users.list", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("user list: %w", err)
	}

	sql, args, err = r.builder.Select("COUNT(*) AS total").
		From(userTable).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var row struct {
		Total int `db:"total"`
	}
	if err := r.db.Get(ctx, &row, "users.count", sql, args...); err != nil {
		return nil, 0, fmt.Errorf("user count: %w", err)
	}
	return items, row.Total, nil
}

// Ensure interface compliance
var _ users.Repository = (*UserRepo)(nil)
