package repository

import (
	"context"
	"database/sql"
	"strings"

	"trivia-coffee/internal/config"
)

// insertReturningID runs an INSERT written with ? placeholders and returns the generated id.
// PostgreSQL reads it back through RETURNING; go-ora needs an output bind instead.
func insertReturningID(ctx context.Context, exec DBTX, query string, args ...interface{}) (int64, error) {
	var id int64
	if exec.DriverName() == config.DriverOracle {
		args = append(args, sql.Out{Dest: &id})
		if _, err := exec.ExecContext(ctx, exec.Rebind(query+" RETURNING id INTO ?"), args...); err != nil {
			return 0, err
		}
		return id, nil
	}
	if err := exec.QueryRowxContext(ctx, exec.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching term anywhere, case-folded to lower.
// Pair it with ESCAPE '\' so wildcards typed by users match literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
