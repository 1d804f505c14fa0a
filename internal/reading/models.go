package reading

import (
	"time"

	"numerology/internal/numerology"
	"numerology/pkg/domain"
)

// Request is a validated reading request.
type Request struct {
	FullName  string
	BirthDate domain.BirthDate
}

// Figure is one derived number with its interpretation.
type Figure struct {
	Category domain.Category
	Number   numerology.Number
	Meaning  string
}

// Master reports whether the figure is a master number.
func (f Figure) Master() bool {
	return f.Number.IsMaster()
}

// Reading is the full profile for a name and birth date.
type Reading struct {
	FullName     string
	BirthDate    domain.BirthDate
	LifePath     Figure
	Destiny      Figure
	SoulUrge     Figure
	Personality  Figure
	CalculatedAt time.Time
}

// Figures returns the four figures in display order.
func (r *Reading) Figures() []Figure {
	return []Figure{r.LifePath, r.Destiny, r.SoulUrge, r.Personality}
}
