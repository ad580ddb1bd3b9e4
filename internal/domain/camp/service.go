package camp

import (
	"context"
	"math/rand"
	"time"

	"github.com/medcamp/medcamp/pkg/apperror"
)

type Service struct {
	camps Repository

	// injected so tests can pin the clock and the code suffix
	now     func() time.Time
	randInt func(n int) int
}

func NewService(camps Repository) *Service {
	return &Service{camps: camps, now: time.Now, randInt: rand.Intn}
}

// CreateCamp validates the input, assigns the camp code and defaults, then
// inserts. A camp-code collision is not retried; the unique constraint
// surfaces it as a storage failure.
func (s *Service) CreateCamp(ctx context.Context, c *Camp) error {
	if c.CampName == "" {
		return apperror.Validation("camp_name is required")
	}
	if c.Location != nil && *c.Location == "" {
		c.Location = nil
	}
	if c.CampDate.IsZero() {
		c.CampDate = s.now()
	}
	c.CampCode = GenerateCampCode(s.now(), CodeSuffixMin+s.randInt(CodeSuffixSpan))
	return s.camps.Create(ctx, c)
}

func (s *Service) ListCamps(ctx context.Context) ([]*Camp, error) {
	return s.camps.List(ctx)
}
