package handler

import (
	"strings"
	"unicode/utf8"

	"numerology/pkg/domain"
	dErrors "numerology/pkg/domain-errors"
)

const (
	minNameLength = 2
	maxNameLength = 200
)

// CalculateRequest is the HTTP request body for POST /v1/readings.
type CalculateRequest struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`

	// Parsed values (populated by Validate)
	parsedBirthDate domain.BirthDate
}

// Validate validates and parses the request.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *CalculateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}

	r.FullName = strings.TrimSpace(r.FullName)
	r.BirthDate = strings.TrimSpace(r.BirthDate)

	// Size validation (fail fast)
	if len(r.FullName) > maxNameLength*utf8.UTFMax || len(r.BirthDate) > 32 {
		return dErrors.New(dErrors.CodeValidation, "request fields are too long")
	}

	switch n := utf8.RuneCountInString(r.FullName); {
	case n < minNameLength:
		return dErrors.New(dErrors.CodeValidation, "full_name must be at least 2 characters")
	case n > maxNameLength:
		return dErrors.New(dErrors.CodeValidation, "full_name must be at most 200 characters")
	}

	if r.BirthDate == "" {
		return dErrors.New(dErrors.CodeValidation, "birth_date is required")
	}
	date, err := domain.ParseBirthDate(r.BirthDate)
	if err != nil {
		return err
	}
	r.parsedBirthDate = date

	return nil
}

// ParsedBirthDate returns the validated birth date.
func (r *CalculateRequest) ParsedBirthDate() domain.BirthDate {
	return r.parsedBirthDate
}
