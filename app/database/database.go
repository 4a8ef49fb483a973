package database

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicate is returned when an insert collides with a unique key.
var ErrDuplicate = errors.New("duplicate entry")

func newID() string {
	return uuid.NewString()
}

// now is replaced in tests that need deterministic ordering.
var now = func() time.Time {
	return time.Now().UTC()
}

// insertedOne turns the result of an INSERT ... ON CONFLICT DO NOTHING into ErrDuplicate
// when the conflict swallowed the row.
func insertedOne(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDuplicate
	}
	return nil
}

// placeholders returns "$from, $from+1, ..." for n positional parameters.
func placeholders(from, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(from + i))
	}
	return b.String()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
