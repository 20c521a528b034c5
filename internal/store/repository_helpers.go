package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-cols/internal/logger"
)

// queryIDs runs a single-column id query.
func queryIDs(ctx context.Context, db *DB, fn, query string, args ...any) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error querying ids")
		return nil, db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			log.Err(err).Str("func", fn).Msg("error scanning id")
			return nil, db.wrap(ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, db.wrap(ErrScanningRows, err)
	}

	return ids, nil
}

// affectedOrNotFound returns notFound when the statement touched no row.
func affectedOrNotFound(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
