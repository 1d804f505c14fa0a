package handler

import (
	"time"

	"numerology/internal/reading"
)

// FigureResponse is one figure in a reading or meaning response.
type FigureResponse struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Number   int    `json:"number"`
	Master   bool   `json:"master"`
	Meaning  string `json:"meaning"`
}

// ReadingResponse is the HTTP response for POST /v1/readings.
type ReadingResponse struct {
	FullName     string         `json:"full_name"`
	BirthDate    string         `json:"birth_date"`
	LifePath     FigureResponse `json:"life_path"`
	Destiny      FigureResponse `json:"destiny"`
	SoulUrge     FigureResponse `json:"soul_urge"`
	Personality  FigureResponse `json:"personality"`
	CalculatedAt time.Time      `json:"calculated_at"`
}

// FromFigure converts a domain Figure to its HTTP form.
func FromFigure(f reading.Figure) FigureResponse {
	return FigureResponse{
		Category: f.Category.String(),
		Title:    f.Category.Title(),
		Number:   int(f.Number),
		Master:   f.Master(),
		Meaning:  f.Meaning,
	}
}

// FromReading converts a domain Reading to an HTTP response.
func FromReading(r *reading.Reading) *ReadingResponse {
	return &ReadingResponse{
		FullName:     r.FullName,
		BirthDate:    r.BirthDate.String(),
		LifePath:     FromFigure(r.LifePath),
		Destiny:      FromFigure(r.Destiny),
		SoulUrge:     FromFigure(r.SoulUrge),
		Personality:  FromFigure(r.Personality),
		CalculatedAt: r.CalculatedAt,
	}
}
