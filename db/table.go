package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"marketplace/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	uniqueViolation      pq.ErrorCode = "23505"
	stringDataTruncation pq.ErrorCode = "22001"
	numericOutOfRange    pq.ErrorCode = "22003"
)

// Table - репозиторий одной таблицы. Первичный ключ всегда колонка id
// и назначается снаружи. Внешние ключи не проверяются.
type Table[T any] struct {
	db   *sqlx.DB
	name string

	selectQuery string
	getQuery    string
	insertQuery string
	updateQuery string
	deleteQuery string
}

// NewTable строит запросы для таблицы name с колонками columns (id - первая)
func NewTable[T any](db *sqlx.DB, name string, columns []string) *Table[T] {
	named := make([]string, len(columns))
	sets := make([]string, 0, len(columns)-1)
	for i, c := range columns {
		named[i] = ":" + c
		if c != "id" {
			sets = append(sets, fmt.Sprintf("%s = :%s", c, c))
		}
	}
	cols := strings.Join(columns, ", ")

	return &Table[T]{
		db:          db,
		name:        name,
		selectQuery: fmt.Sprintf("SELECT %s FROM %s ORDER BY id", cols, name),
		getQuery:    fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", cols, name),
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", name, cols, strings.Join(named, ", ")),
		updateQuery: fmt.Sprintf("UPDATE %s SET %s WHERE id = :id", name, strings.Join(sets, ", ")),
		deleteQuery: fmt.Sprintf("DELETE FROM %s WHERE id = $1", name),
	}
}

// Name возвращает имя таблицы
func (t *Table[T]) Name() string {
	return t.name
}

// Create вставляет запись с заданным id. Уникальность проверяет БД.
func (t *Table[T]) Create(ctx context.Context, rec *T) error {
	if _, err := t.db.NamedExecContext(ctx, t.insertQuery, rec); err != nil {
		return t.wrap("insert", err)
	}
	return nil
}

// GetByID возвращает запись или models.ErrNotFound
func (t *Table[T]) GetByID(ctx context.Context, id int) (*T, error) {
	rec := new(T)
	if err := t.db.GetContext(ctx, rec, t.getQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, t.wrap("get", err)
	}
	return rec, nil
}

// List возвращает все записи таблицы
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	recs := []T{}
	if err := t.db.SelectContext(ctx, &recs, t.selectQuery); err != nil {
		return nil, t.wrap("list", err)
	}
	return recs, nil
}

// Update перезаписывает все поля записи (полная замена)
func (t *Table[T]) Update(ctx context.Context, rec *T) error {
	res, err := t.db.NamedExecContext(ctx, t.updateQuery, rec)
	if err != nil {
		return t.wrap("update", err)
	}
	return t.checkAffected(res)
}

// Delete удаляет запись по id
func (t *Table[T]) Delete(ctx context.Context, id int) error {
	res, err := t.db.ExecContext(ctx, t.deleteQuery, id)
	if err != nil {
		return t.wrap("delete", err)
	}
	return t.checkAffected(res)
}

// InsertAll вставляет пачку записей в одной транзакции.
// При любой ошибке откатывается вся пачка.
func (t *Table[T]) InsertAll(ctx context.Context, recs []T) error {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin transaction: %w", t.name, err)
	}
	defer tx.Rollback()

	for i := range recs {
		if _, err := tx.NamedExecContext(ctx, t.insertQuery, &recs[i]); err != nil {
			return t.wrap(fmt.Sprintf("insert #%d", i), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", t.name, err)
	}
	return nil
}

func (t *Table[T]) checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", t.name, err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// wrap переводит ошибки postgres в ошибки модели
func (t *Table[T]) wrap(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%s: %s: %w", t.name, op, models.ErrDuplicateID)
		case stringDataTruncation:
			return fmt.Errorf("%s: %s: %w: %s", t.name, op, models.ErrValueTooLong, pqErr.Message)
		case numericOutOfRange:
			return fmt.Errorf("%s: %s: %w: %s", t.name, op, models.ErrValueOutOfRange, pqErr.Message)
		}
	}
	return fmt.Errorf("%s: %s: %w", t.name, op, err)
}
