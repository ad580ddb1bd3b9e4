package doctor

import "time"

// Doctor is a read-only directory entry. Rows are seeded by migration or
// loaded out of band; the API never writes this table.
type Doctor struct {
	DoctorID       int64     `json:"doctor_id"`
	Name           string    `json:"name"`
	Specialization *string   `json:"specialization"`
	Phone          *string   `json:"phone"`
	Available      bool      `json:"available"`
	CreatedAt      time.Time `json:"created_at"`
}
