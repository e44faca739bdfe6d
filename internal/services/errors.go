package services

import "github.com/pkg/errors"

var (
	// login failures stay distinguishable so the API can answer with
	// distinct messages, both under 401
	ErrAccountNotFound = errors.New("account not found")
	ErrWrongPassword   = errors.New("wrong password")

	ErrJobNotFound = errors.New("job not found")
	ErrSalaryRange = errors.New("salary_min must not exceed salary_max")
)
