package postgres

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("agent360/db")

// DB executes read queries against the pool with tracing spans around
// each query. All repositories go through it.
type DB struct {
	pool *pgxpool.Pool
}

// NewDB creates a traced query executor over the pool.
func NewDB(pool *Pool) *DB {
	return &DB{pool: pool.Pool}
}

// Select runs a multi-row query and scans the results into dst, which
// must be a pointer to a slice of structs with db tags.
func (db *DB) Select(ctx context.Context, dst any, name, sql string, args ...any) error {
	ctx, span := db.startSpan(ctx, name)
	defer span.End()

	if err := pgxscan.Select(ctx, db.pool, dst, sql, args...); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Get runs a single-row query and scans the result into dst. The caller
// is responsible for mapping pgxscan.NotFound.
func (db *DB) Get(ctx context.Context, dst any, name, sql string, args ...any) error {
	ctx, span := db.startSpan(ctx, name)
	defer span.End()

	if err := pgxscan.Get(ctx, db.pool, dst, sql, args...); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// NotFound reports whether err is a missing-row error from Get.
func NotFound(err error) bool {
	return pgxscan.NotFound(err)
}

// Ping verifies database connectivity for readiness checks.
func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", "postgresql")),
	)
}
