package postgres

import (
	"context"
	"fmt"

	"github.com/ForumApp/content-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// namedRepo serves hashtags, communities and flags with one code
// path; the three tables share the same (id, name) shape and the same
// case-insensitive unique index on name.
type namedRepo struct {
	db    *pgxpool.Pool
	table string
}

func newNamedRepo(db *pgxpool.Pool, table string) Named {
	return &namedRepo{
		db:    db,
		table: table,
	}
}

func (r *namedRepo) FindByNameInsensitive(ctx context.Context, name string) (*model.NamedRef, error) {
	var ref model.NamedRef
	if err := r.db.QueryRow(
		ctx,
		fmt.Sprintf("SELECT id, name FROM %s WHERE LOWER(name) = LOWER($1)", r.table),
		name,
	).Scan(&ref.ID, &ref.Name); err != nil {
		return nil, err
	}

	return &ref, nil
}

func (r *namedRepo) Create(ctx context.Context, name string) (*model.NamedRef, error) {
	ref := model.NamedRef{Name: name}
	if err := r.db.QueryRow(
		ctx,
		fmt.Sprintf("INSERT INTO %s(name) VALUES($1) RETURNING id", r.table),
		name,
	).Scan(&ref.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUniqueViolation
		}
		return nil, err
	}

	return &ref, nil
}

func (r *namedRepo) FindByIDs(ctx context.Context, ids []int64) ([]model.NamedRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(
		ctx,
		fmt.Sprintf("SELECT id, name FROM %s WHERE id = ANY($1)", r.table),
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNamedRefs(rows)
}

func (r *namedRepo) List(ctx context.Context, limit int, offset int) ([]model.NamedRef, error) {
	rows, err := r.db.Query(
		ctx,
		fmt.Sprintf("SELECT id, name FROM %s ORDER BY name ASC LIMIT $1 OFFSET $2", r.table),
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNamedRefs(rows)
}

func (r *namedRepo) ListAll(ctx context.Context) ([]model.NamedRef, error) {
	rows, err := r.db.Query(
		ctx,
		fmt.Sprintf("SELECT id, name FROM %s ORDER BY name ASC", r.table),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNamedRefs(rows)
}

func (r *namedRepo) Search(ctx context.Context, q string, limit int) ([]model.NamedRef, error) {
	rows, err := r.db.Query(
		ctx,
		fmt.Sprintf("SELECT id, name FROM %s WHERE name ILIKE '%%' || $1 || '%%' ORDER BY name ASC LIMIT $2", r.table),
		q,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNamedRefs(rows)
}

func (r *namedRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table)).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func scanNamedRefs(rows pgx.Rows) ([]model.NamedRef, error) {
	var refs []model.NamedRef
	for rows.Next() {
		var ref model.NamedRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}
