// Package types provides request type definitions and validation for the job tracker API.
package types

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// linkedInJobURLPattern matches LinkedIn job posting URLs (direct views and collections).
var linkedInJobURLPattern = regexp.MustCompile(`^https://www\.linkedin\.com/jobs/(view|collections)/.+$`)

// JobPostingRequest represents the payload submitted by the browser extension.
// Field order determines validation order: the first failing rule wins.
type JobPostingRequest struct {
	Position        string   `json:"position" validate:"required,notblank,max=500"`
	Company         string   `json:"company" validate:"required,notblank,max=200"`
	PostingURL      string   `json:"posting_url" validate:"required,notblank,linkedin_job_url"`
	Origin          string   `json:"origin" validate:"required,notblank,eq=LinkedIn"`
	Match           string   `json:"match,omitempty" validate:"omitempty,oneof=low medium high"`
	WorkArrangement string   `json:"work_arrangement,omitempty" validate:"omitempty,oneof=remote hybrid on-site"`
	Demand          string   `json:"demand,omitempty" validate:"omitempty,oneof=0-50 51-200 201-500 500+"`
	Budget          *float64 `json:"budget,omitempty" validate:"omitempty,gte=0"`
	JobDescription  string   `json:"job_description,omitempty" validate:"omitempty,max=50000"`
	City            string   `json:"city,omitempty" validate:"omitempty,max=200"`
	Country         string   `json:"country,omitempty" validate:"omitempty,max=200"`

	// PageID, when present, identifies an existing page to update in place.
	PageID string `json:"page_id,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report json field names in validation errors instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("linkedin_job_url", func(fl validator.FieldLevel) bool {
		return linkedInJobURLPattern.MatchString(fl.Field().String())
	})

	return v
}

// Validate checks the request against the field rules. It returns nil when the
// payload is valid, or an error carrying the first failing field's message.
func (r *JobPostingRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return errors.New(fieldMessage(validationErrors[0]))
	}
	return err
}

// fieldMessage translates a validator error into the API's human-readable message.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s cannot be empty", field)
	case "max":
		switch field {
		case "position", "company":
			return fmt.Sprintf("%s must be %s characters or less", field, fe.Param())
		default:
			return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
		}
	case "linkedin_job_url":
		return "posting_url must be a valid LinkedIn job URL"
	case "eq":
		return fmt.Sprintf("%s must be '%s'", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Split(fe.Param(), " "), ", "))
	case "gte":
		return fmt.Sprintf("%s must be a positive number", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
