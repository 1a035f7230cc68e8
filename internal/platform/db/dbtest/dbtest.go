// Package dbtest provides a scripted stand-in for db.DBTX so repositories can be
// tested without a database.
package dbtest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Result is what the next Exec, Query or QueryRow call returns.
type Result struct {
	Rows [][]any
	Tag  string
	Err  error
}

// Call records one statement sent to the DB.
type Call struct {
	SQL  string
	Args []any
}

// DB replays queued results in order. An empty queue yields empty results.
type DB struct {
	mu         sync.Mutex
	queue      []Result
	Calls      []Call
	Commits    int
	Rollbacks  int
	BeginError error
}

// New returns a DB that will answer with results in order.
func New(results ...Result) *DB {
	return &DB{queue: results}
}

// Push queues another result.
func (d *DB) Push(r Result) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue = append(d.queue, r)
}

func (d *DB) next(sql string, args []any) Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Calls = append(d.Calls, Call{SQL: sql, Args: args})
	if len(d.queue) == 0 {
		return Result{}
	}
	r := d.queue[0]
	d.queue = d.queue[1:]
	return r
}

func (d *DB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r := d.next(sql, args)
	return pgconn.NewCommandTag(r.Tag), r.Err
}

func (d *DB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r := d.next(sql, args)
	if r.Err != nil && r.Rows == nil {
		return nil, r.Err
	}
	return &Rows{values: r.Rows, index: -1, err: r.Err}, nil
}

func (d *DB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r := d.next(sql, args)
	return &Row{values: r.Rows, err: r.Err}
}

// BeginTx returns a transaction that shares this DB's queue.
func (d *DB) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	if d.BeginError != nil {
		return nil, d.BeginError
	}
	return &Tx{db: d}, nil
}

// Tx implements the parts of pgx.Tx that repositories use.
type Tx struct {
	pgx.Tx
	db   *DB
	done bool
}

func (t *Tx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.db.Exec(ctx, sql, args...)
}

func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return t.db.Query(ctx, sql, args...)
}

func (t *Tx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.db.QueryRow(ctx, sql, args...)
}

func (t *Tx) Commit(context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.db.mu.Lock()
	t.db.Commits++
	t.db.mu.Unlock()
	return nil
}

func (t *Tx) Rollback(context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.db.mu.Lock()
	t.db.Rollbacks++
	t.db.mu.Unlock()
	return nil
}

// Rows iterates scripted values.
type Rows struct {
	values [][]any
	index  int
	err    error
	closed bool
}

func (r *Rows) Close() {
	r.closed = true
}

func (r *Rows) Err() error {
	return r.err
}

func (r *Rows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.values)))
}

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription {
	return nil
}

func (r *Rows) Next() bool {
	if r.closed || r.index+1 >= len(r.values) {
		r.closed = true
		return false
	}
	r.index++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.index < 0 || r.index >= len(r.values) {
		return errors.New("dbtest: no row available")
	}
	return assign(r.values[r.index], dest)
}

func (r *Rows) Values() ([]any, error) {
	if r.index < 0 || r.index >= len(r.values) {
		return nil, errors.New("dbtest: no row available")
	}
	return r.values[r.index], nil
}

func (r *Rows) RawValues() [][]byte {
	if r.index < 0 || r.index >= len(r.values) {
		return nil
	}
	return make([][]byte, len(r.values[r.index]))
}

func (r *Rows) Conn() *pgx.Conn {
	return nil
}

// Row answers a single QueryRow. No values means pgx.ErrNoRows.
type Row struct {
	values [][]any
	err    error
}

func (r *Row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(r.values) == 0 {
		return pgx.ErrNoRows
	}
	return assign(r.values[0], dest)
}

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("dbtest: %d values for %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		target := reflect.ValueOf(d)
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("dbtest: destination %d is %T, want non-nil pointer", i, d)
		}
		if scanner, ok := d.(sql.Scanner); ok {
			if err := scanner.Scan(values[i]); err != nil {
				return fmt.Errorf("dbtest: scan destination %d: %w", i, err)
			}
			continue
		}
		target = target.Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		if target.Kind() == reflect.Pointer && v.Kind() != reflect.Pointer {
			p := reflect.New(target.Type().Elem())
			if !v.Type().ConvertibleTo(p.Elem().Type()) {
				return fmt.Errorf("dbtest: cannot assign %T to %s", values[i], target.Type())
			}
			p.Elem().Set(v.Convert(p.Elem().Type()))
			target.Set(p)
			continue
		}
		if !v.Type().ConvertibleTo(target.Type()) {
			return fmt.Errorf("dbtest: cannot assign %T to %s", values[i], target.Type())
		}
		target.Set(v.Convert(target.Type()))
	}
	return nil
}

// PgError builds a driver error carrying the given SQLSTATE.
func PgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint, Message: "scripted failure"}
}
