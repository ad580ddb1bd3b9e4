package patient

import (
	"context"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/medcamp/medcamp/pkg/apperror"
)

// -- Mock Patient Repository --

type mockPatientRepo struct {
	patients    map[int64]*Patient
	nextID      int64
	createCalls int
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[int64]*Patient), nextID: 1}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	m.createCalls++
	p.PatientID = m.nextID
	m.nextID++
	p.CreatedAt = time.Now()
	m.patients[p.PatientID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id int64) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, apperror.NotFound("patient")
	}
	return p, nil
}

// List returns newest-first, matching the store's patient_id ordering.
func (m *mockPatientRepo) List(_ context.Context) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PatientID > result[j].PatientID
	})
	return result, nil
}

func (m *mockPatientRepo) ListByCamp(_ context.Context, campID int64) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		if p.CampID != nil && *p.CampID == campID {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PatientID > result[j].PatientID
	})
	return result, nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.patients[id]; !ok {
		return apperror.NotFound("patient")
	}
	delete(m.patients, id)
	return nil
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }

func TestService_CreatePatient(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)

	p := &Patient{Name: "Ravi", Gender: "M", Phone: "9876543210", Age: intptr(42)}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PatientID == 0 {
		t.Error("expected patient id to be assigned")
	}
}

func TestService_CreatePatient_MissingRequired(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)

	cases := []*Patient{
		{Gender: "F", Phone: "123"},
		{Name: "Asha", Phone: "123"},
		{Name: "Asha", Gender: "F"},
	}
	for _, p := range cases {
		err := svc.CreatePatient(context.Background(), p)
		if !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	}
	if repo.createCalls != 0 {
		t.Errorf("expected no inserts on validation failure, got %d", repo.createCalls)
	}
}

func TestService_CreatePatient_NormalizesOptionals(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)

	p := &Patient{
		Name:         "Meena",
		Gender:       "F",
		Phone:        "555",
		RelativeName: strptr(""),
		Village:      strptr(""),
		Age:          intptr(0),
	}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RelativeName != nil || p.Village != nil {
		t.Error("expected empty optional strings normalized to nil")
	}
	if p.Age != nil {
		t.Errorf("expected zero age normalized to nil, got %d", *p.Age)
	}
}

func TestService_CreatePatient_NegativeAge(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)

	p := &Patient{Name: "Kumar", Gender: "M", Phone: "777", Age: intptr(-3)}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Age != nil {
		t.Errorf("expected negative age normalized to nil, got %d", *p.Age)
	}
}

func TestService_GetPatient_NotFound(t *testing.T) {
	svc := NewService(newMockPatientRepo())

	_, err := svc.GetPatient(context.Background(), 999)
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestService_DeletePatient_Twice(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)

	p := &Patient{Name: "Ravi", Gender: "M", Phone: "111"}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeletePatient(context.Background(), p.PatientID); err != nil {
		t.Fatalf("unexpected error on first delete: %v", err)
	}
	err := svc.DeletePatient(context.Background(), p.PatientID)
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestService_ListPatients_RepeatedReads(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)

	for _, name := range []string{"Ravi", "Meena", "Kumar"} {
		p := &Patient{Name: name, Gender: "M", Phone: "123"}
		if err := svc.CreatePatient(context.Background(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	first, err := svc.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != 3 {
		t.Fatalf("expected 3 patients, got %d", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected repeated lists to match: %v vs %v", first, second)
	}
}

func TestService_CreateThenGet_RoundTrip(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)

	campID := int64(5)
	in := &Patient{
		Name:    "Lakshmi",
		Gender:  "F",
		Phone:   "9000012345",
		Age:     intptr(34),
		Village: strptr("Kovilur"),
		CampID:  &campID,
	}
	if err := svc.CreatePatient(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetPatient(context.Background(), in.PatientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Lakshmi" || got.Gender != "F" || got.Phone != "9000012345" {
		t.Errorf("required fields did not round-trip: %+v", got)
	}
	if got.Age == nil || *got.Age != 34 {
		t.Error("expected age 34 to round-trip")
	}
	if got.Village == nil || *got.Village != "Kovilur" {
		t.Error("expected village to round-trip")
	}
	if got.CampID == nil || *got.CampID != campID {
		t.Error("expected camp_id to round-trip")
	}
	if got.RelativeName != nil || got.Panchayat != nil || got.Reason != nil || got.Doctor != nil {
		t.Errorf("expected omitted optionals to stay nil: %+v", got)
	}
}

func TestService_ListPatientsByCamp(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo)

	campID := int64(7)
	inCamp := &Patient{Name: "A", Gender: "F", Phone: "1", CampID: &campID}
	walkIn := &Patient{Name: "B", Gender: "M", Phone: "2"}
	for _, p := range []*Patient{inCamp, walkIn} {
		if err := svc.CreatePatient(context.Background(), p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	patients, err := svc.ListPatientsByCamp(context.Background(), campID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 1 || patients[0].Name != "A" {
		t.Errorf("expected only the camp patient, got %d", len(patients))
	}
}
