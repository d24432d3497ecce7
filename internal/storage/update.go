package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/md-rashed-zaman/bookinglite/libs/db"
)

// updateColumns applies the subset of fields whose keys appear in columns.
// An empty subset still verifies the row exists so callers get a uniform
// not-found error; otherwise it is a no-op.
func updateColumns(ctx context.Context, pool *db.Pool, table string, columns []string, id string, fields map[string]string) error {
	set := make([]string, 0, len(fields))
	args := []any{id}
	for _, col := range columns {
		v, ok := fields[col]
		if !ok {
			continue
		}
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if len(set) == 0 {
		var one int
		return pool.QueryRow(ctx, `SELECT 1 FROM `+table+` WHERE id = $1`, id).Scan(&one)
	}

	tag, err := pool.Exec(ctx, `UPDATE `+table+` SET `+strings.Join(set, ", ")+` WHERE id = $1`, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func deleteRow(ctx context.Context, pool *db.Pool, table, id string) error {
	tag, err := pool.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
