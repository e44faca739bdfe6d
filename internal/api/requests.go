package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/tuyendunghub/job-board/internal/services"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// jobRequest is a full-replace payload: optional fields left out by the
// client are written back as empty.
type jobRequest struct {
	Title          string `json:"title" binding:"required"`
	Company        string `json:"company" binding:"required"`
	Location       string `json:"location" binding:"required"`
	Description    string `json:"description" binding:"required"`
	ContactEmail   string `json:"contact_email" binding:"required"`
	Requirements   string `json:"requirements"`
	Benefits       string `json:"benefits"`
	SalaryMin      *int   `json:"salary_min"`
	SalaryMax      *int   `json:"salary_max"`
	SalaryCurrency string `json:"salary_currency"`
	JobType        string `json:"job_type"`
	ContactPhone   string `json:"contact_phone"`
	IsActive       *bool  `json:"is_active"`
}

func (req jobRequest) toInput() services.JobInput {
	return services.JobInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Benefits:       req.Benefits,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		SalaryCurrency: req.SalaryCurrency,
		JobType:        req.JobType,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		IsActive:       req.IsActive,
	}
}

func bindingErrorMessage(err error) string {

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := lo.Map(validationErrors, func(fieldError validator.FieldError, _ int) string {
			return fieldError.Field()
		})
		return msgMissingFields + ": " + strings.Join(fields, ", ")
	}

	return msgInvalidBody
}
