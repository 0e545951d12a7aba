package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"roadservice/internal/apperror"
	"roadservice/internal/domain/paging"
)

// binding describes how a resource type maps onto its table.
type binding[T any] struct {
	name     string   // singular resource name used in messages
	table    string   // table name, also the column qualifier
	columns  []string // mutable columns, in values() order
	values   func(*T) []any
	id       func(*T) int64
	fields   paging.SortFields
	parentFK func(*T) string // detail reported for a foreign key violation
}

// Scope narrows a list or count: extra joins plus one predicate over the
// table's qualified columns.
type Scope struct {
	Joins []string
	Where string
	Args  []any
}

func (s Scope) clause() string {
	var b strings.Builder
	for _, j := range s.Joins {
		b.WriteString(" ")
		b.WriteString(j)
	}
	if s.Where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(s.Where)
	}
	return b.String()
}

// Table is the generic facade over one resource table. Entity tables embed
// it and add their relationship scopes.
type Table[T any] struct {
	db         *DB
	b          binding[T]
	selectList string
}

func newTable[T any](db *DB, b binding[T]) *Table[T] {
	cols := append([]string{"id"}, b.columns...)
	cols = append(cols, "created_at", "updated_at")

	list := make([]string, 0, len(cols))
	for _, c := range cols {
		list = append(list, fmt.Sprintf("%s.%s AS %s", b.table, c, c))
	}
	return &Table[T]{db: db, b: b, selectList: strings.Join(list, ", ")}
}

// SortFields returns the sortable properties of the resource.
func (t *Table[T]) SortFields() paging.SortFields { return t.b.fields }

func (t *Table[T]) Count(ctx context.Context) (int64, error) {
	return t.CountScoped(ctx, Scope{})
}

func (t *Table[T]) CountScoped(ctx context.Context, scope Scope) (int64, error) {
	q := "SELECT COUNT(*) FROM " + t.b.table + scope.clause()

	var n int64
	if err := t.db.GetContext(ctx, &n, t.db.Rebind(q), scope.Args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", t.b.table, err)
	}
	return n, nil
}

func (t *Table[T]) Get(ctx context.Context, id int64) (*T, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE %s.id = ?", t.selectList, t.b.table, t.b.table)

	var out T
	err := t.db.GetContext(ctx, &out, t.db.Rebind(q), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("%s %d not found", t.b.name, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s %d: %w", t.b.name, id, err)
	}
	return &out, nil
}

func (t *Table[T]) List(ctx context.Context, pas paging.PagingAndSorting) ([]T, error) {
	return t.ListScoped(ctx, pas, Scope{})
}

// ListScoped returns one page of rows matching scope. Ordering, offset and
// limit are applied exactly as in List.
func (t *Table[T]) ListScoped(ctx context.Context, pas paging.PagingAndSorting, scope Scope) ([]T, error) {
	order, err := paging.ResolveSort(pas.Sort, t.b.fields)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT ? OFFSET ?",
		t.selectList, t.b.table, scope.clause(), order.SQL())
	args := append(append([]any{}, scope.Args...), pas.Limit(), pas.Offset())

	log.Debug().
		Str("table", t.b.table).
		Str("order", order.SQL()).
		Int("limit", pas.Limit()).
		Int("offset", pas.Offset()).
		Msg("list")

	out := make([]T, 0, pas.Limit())
	if err := t.db.SelectContext(ctx, &out, t.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.b.table, err)
	}
	return out, nil
}

// Create inserts the resource with fresh timestamps and returns the stored
// row.
func (t *Table[T]) Create(ctx context.Context, resource *T) (*T, error) {
	now := t.db.Now()

	cols := append(append([]string{}, t.b.columns...), "created_at", "updated_at")
	args := append(t.b.values(resource), now, now)
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		t.b.table, strings.Join(cols, ", "), marks)

	var id int64
	if err := t.db.QueryRowxContext(ctx, t.db.Rebind(q), args...).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperror.Wrap(apperror.ErrBadRequest, err, t.b.parentFK(resource))
		}
		return nil, fmt.Errorf("insert %s: %w", t.b.name, err)
	}

	return t.Get(ctx, id)
}

// Update writes the mutable columns, bumps updated_at and returns the
// stored row.
func (t *Table[T]) Update(ctx context.Context, resource *T) (*T, error) {
	id := t.b.id(resource)

	sets := make([]string, 0, len(t.b.columns)+1)
	for _, c := range t.b.columns {
		sets = append(sets, c+" = ?")
	}
	sets = append(sets, "updated_at = ?")
	args := append(t.b.values(resource), t.db.Now(), id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", t.b.table, strings.Join(sets, ", "))

	res, err := t.db.ExecContext(ctx, t.db.Rebind(q), args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperror.Wrap(apperror.ErrBadRequest, err, t.b.parentFK(resource))
		}
		return nil, fmt.Errorf("update %s %d: %w", t.b.name, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update %s %d: %w", t.b.name, id, err)
	}
	if n == 0 {
		return nil, apperror.NotFound("%s %d not found", t.b.name, id)
	}

	return t.Get(ctx, id)
}

// Delete removes the row. An absent id is not an error.
func (t *Table[T]) Delete(ctx context.Context, id int64) error {
	q := fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.b.table)
	if _, err := t.db.ExecContext(ctx, t.db.Rebind(q), id); err != nil {
		return fmt.Errorf("delete %s %d: %w", t.b.name, id, err)
	}
	return nil
}
