package camp

import (
	"fmt"
	"time"
)

// Camp code suffixes are drawn from [1000,9999].
const (
	CodeSuffixMin  = 1000
	CodeSuffixSpan = 9000
)

// GenerateCampCode formats the human-readable camp label, e.g. CAMP2024-4821.
// The suffix is whatever the caller drew; uniqueness is enforced by the store
// constraint, not here. A collision surfaces as a storage failure on insert.
func GenerateCampCode(now time.Time, suffix int) string {
	return fmt.Sprintf("CAMP%d-%04d", now.Year(), suffix)
}
