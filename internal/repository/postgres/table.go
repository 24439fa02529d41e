package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/internal/domain"
	"github.com/MarcosAntonio3/Conclusao-do-Projeto-API-Rest/pkg/logger"
	"github.com/jackc/pgx/v5"
)

// Input is a request body that knows its column values in table order
type Input interface {
	Args() []any
}

// Table implements repository.Repository for one table whose rows scan into E.
// columns lists the writable columns, in the order Input.Args returns them.
type Table[E any, F Input] struct {
	db      DB
	log     *logger.Logger
	name    string
	columns []string

	selectAll  string
	selectByID string
	insert     string
	update     string
	delete     string
}

// NewTable prepares the statements for table name
func NewTable[E any, F Input](db DB, log *logger.Logger, name string, columns ...string) *Table[E, F] {
	returning := "id, " + strings.Join(columns, ", ")

	placeholders := make([]string, len(columns))
	assignments := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	return &Table[E, F]{
		db:      db,
		log:     log,
		name:    name,
		columns: columns,

		selectAll:  fmt.Sprintf("SELECT %s FROM %s", returning, name),
		selectByID: fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", returning, name),
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			name, strings.Join(columns, ", "), strings.Join(placeholders, ", "), returning),
		update: fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
			name, strings.Join(assignments, ", "), len(columns)+1, returning),
		delete: fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", name, returning),
	}
}

// GetAll возвращает все записи таблицы
func (t *Table[E, F]) GetAll(ctx context.Context) ([]E, error) {
	rows, err := t.db.Query(ctx, t.selectAll)
	if err != nil {
		return nil, domain.NewDatabaseError("select", t.name, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[E])
	if err != nil {
		return nil, domain.NewDatabaseError("select", t.name, err)
	}
	if items == nil {
		items = []E{}
	}

	t.log.Debugw("Listed rows", "table", t.name, "count", len(items))
	return items, nil
}

// GetByID возвращает запись по ID
func (t *Table[E, F]) GetByID(ctx context.Context, id int64) (E, error) {
	return t.one(ctx, "select", t.selectByID, id)
}

// Create вставляет новую запись
func (t *Table[E, F]) Create(ctx context.Context, input F) (E, error) {
	return t.one(ctx, "insert", t.insert, input.Args()...)
}

// Update полностью перезаписывает запись по ID
func (t *Table[E, F]) Update(ctx context.Context, id int64, input F) (E, error) {
	args := append(input.Args(), id)
	return t.one(ctx, "update", t.update, args...)
}

// Delete удаляет запись по ID и возвращает удаленную строку
func (t *Table[E, F]) Delete(ctx context.Context, id int64) (E, error) {
	return t.one(ctx, "delete", t.delete, id)
}

func (t *Table[E, F]) one(ctx context.Context, op, sql string, args ...any) (E, error) {
	var zero E

	rows, err := t.db.Query(ctx, sql, args...)
	if err != nil {
		return zero, domain.NewDatabaseError(op, t.name, err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[E])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, domain.ErrNotFound
		}
		return zero, domain.NewDatabaseError(op, t.name, err)
	}

	t.log.Debugw("Statement affected one row", "table", t.name, "op", op)
	return item, nil
}
