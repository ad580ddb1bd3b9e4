package camp

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcamp/medcamp/pkg/apperror"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const campCols = `camp_id, camp_code, camp_name, location, camp_date, created_at`

func (r *repoPG) Create(ctx context.Context, c *Camp) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO camps (camp_code, camp_name, location, camp_date)
		VALUES ($1, $2, $3, $4)
		RETURNING camp_id, created_at`,
		c.CampCode, c.CampName, c.Location, c.CampDate,
	).Scan(&c.CampID, &c.CreatedAt)
	if err != nil {
		return apperror.Storage("insert camp", err)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context) ([]*Camp, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campCols+` FROM camps ORDER BY camp_date DESC, camp_id DESC`)
	if err != nil {
		return nil, apperror.Storage("list camps", err)
	}
	defer rows.Close()

	var camps []*Camp
	for rows.Next() {
		var c Camp
		if err := rows.Scan(&c.CampID, &c.CampCode, &c.CampName, &c.Location, &c.CampDate, &c.CreatedAt); err != nil {
			return nil, apperror.Storage("scan camp", err)
		}
		camps = append(camps, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("list camps", err)
	}
	return camps, nil
}
