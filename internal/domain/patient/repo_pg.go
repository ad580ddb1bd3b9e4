package patient

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcamp/medcamp/pkg/apperror"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `patient_id, name, relative_name, village, panchayat, union_name,
	age, gender, phone, reason, doctor, camp_id, created_at`

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO patients (name, relative_name, village, panchayat, union_name,
			age, gender, phone, reason, doctor, camp_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING patient_id, created_at`,
		p.Name, p.RelativeName, p.Village, p.Panchayat, p.UnionName,
		p.Age, p.Gender, p.Phone, p.Reason, p.Doctor, p.CampID,
	).Scan(&p.PatientID, &p.CreatedAt)
	if err != nil {
		return apperror.Storage("insert patient", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE patient_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("patient")
		}
		return nil, apperror.Storage("get patient", err)
	}
	return p, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	return r.queryPatients(ctx, `SELECT `+patientCols+` FROM patients ORDER BY patient_id DESC`)
}

func (r *repoPG) ListByCamp(ctx context.Context, campID int64) ([]*Patient, error) {
	return r.queryPatients(ctx, `SELECT `+patientCols+` FROM patients WHERE camp_id = $1 ORDER BY patient_id DESC`, campID)
}

// Delete removes the row by id. A delete that matches nothing is reported as
// not found, never as success; a repeated delete of the same id must fail.
func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE patient_id = $1`, id)
	if err != nil {
		return apperror.Storage("delete patient", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("patient")
	}
	return nil
}

func (r *repoPG) queryPatients(ctx context.Context, sql string, args ...interface{}) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.Storage("list patients", err)
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatientRows(rows)
		if err != nil {
			return nil, apperror.Storage("scan patient", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("list patients", err)
	}
	return patients, nil
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(
		&p.PatientID, &p.Name, &p.RelativeName, &p.Village, &p.Panchayat, &p.UnionName,
		&p.Age, &p.Gender, &p.Phone, &p.Reason, &p.Doctor, &p.CampID, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPatientRows(rows pgx.Rows) (*Patient, error) {
	var p Patient
	err := rows.Scan(
		&p.PatientID, &p.Name, &p.RelativeName, &p.Village, &p.Panchayat, &p.UnionName,
		&p.Age, &p.Gender, &p.Phone, &p.Reason, &p.Doctor, &p.CampID, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
