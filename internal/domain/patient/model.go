package patient

import "time"

// Patient maps to the patients table. Optional columns keep pointer types so
// NULLs round-trip to JSON null. CampID is nil for patients registered
// outside any camp.
type Patient struct {
	PatientID    int64     `json:"patient_id"`
	Name         string    `json:"name"`
	RelativeName *string   `json:"relative_name"`
	Village      *string   `json:"village"`
	Panchayat    *string   `json:"panchayat"`
	UnionName    *string   `json:"union_name"`
	Age          *int      `json:"age"`
	Gender       string    `json:"gender"`
	Phone        string    `json:"phone"`
	Reason       *string   `json:"reason"`
	Doctor       *string   `json:"doctor"`
	CampID       *int64    `json:"camp_id"`
	CreatedAt    time.Time `json:"created_at"`
}
