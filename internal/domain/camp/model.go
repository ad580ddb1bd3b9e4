package camp

import "time"

// Camp maps to the camps table. A camp is a temporary clinic event; patients
// register against it by camp_id. Optional columns keep pointer types so
// NULLs round-trip to JSON null.
type Camp struct {
	CampID    int64     `json:"camp_id"`
	CampCode  string    `json:"camp_code"`
	CampName  string    `json:"camp_name"`
	Location  *string   `json:"location"`
	CampDate  time.Time `json:"camp_date"`
	CreatedAt time.Time `json:"created_at"`
}
