package doctor

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

func (r *repoPG) List(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT doctor_id, name, specialization, phone, available, created_at
		FROM doctors
		ORDER BY name ASC`)
	if err != nil {
		return nil, apperror.Storage("list doctors", err)
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.DoctorID, &d.Name, &d.Specialization, &d.Phone, &d.Available, &d.CreatedAt); err != nil {
			return nil, apperror.Storage("scan doctor", err)
		}
		doctors = append(doctors, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("list doctors", err)
	}
	return doctors, nil
}
