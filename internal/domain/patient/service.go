package patient

import (
	"context"

	"github.com/medcamp/medcamp/pkg/apperror"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// CreatePatient validates required fields and normalizes absent optional
// fields to NULL before inserting. A camp_id pointing at a missing camp is
// left to the store's foreign key; the core does not pre-validate it.
func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" || p.Gender == "" || p.Phone == "" {
		return apperror.Validation("name, gender, and phone are required")
	}
	normalize(p)
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

func (s *Service) ListPatientsByCamp(ctx context.Context, campID int64) ([]*Patient, error) {
	return s.patients.ListByCamp(ctx, campID)
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	return s.patients.Delete(ctx, id)
}

// normalize maps empty optional values to nil so they store as NULL.
// Non-positive ages collapse to NULL as well, matching the registration
// form's behavior.
func normalize(p *Patient) {
	p.RelativeName = emptyToNil(p.RelativeName)
	p.Village = emptyToNil(p.Village)
	p.Panchayat = emptyToNil(p.Panchayat)
	p.UnionName = emptyToNil(p.UnionName)
	p.Reason = emptyToNil(p.Reason)
	p.Doctor = emptyToNil(p.Doctor)
	if p.Age != nil && *p.Age <= 0 {
		p.Age = nil
	}
	if p.CampID != nil && *p.CampID == 0 {
		p.CampID = nil
	}
}

func emptyToNil(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
