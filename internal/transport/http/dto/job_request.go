package dto

import (
	"github.com/pawararyan169/job-portal/internal/domain"
)

type PostJobRequest struct {
	Title       string `json:"title" validate:"omitempty,max=200"`
	Company     string `json:"company" validate:"omitempty,max=200"`
	Location    string `json:"location"`
	SalaryRange string `json:"salaryRange"`
	Description string `json:"description"`
	JobType     string `json:"jobType"`
}

func (r *PostJobRequest) Validate() error {
	if r.Title == "" {
		return domain.ErrMissingField("title")
	}
	if r.Company == "" {
		return domain.ErrMissingField("company")
	}
	return runValidator(r)
}
