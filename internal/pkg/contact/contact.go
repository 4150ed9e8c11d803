package contact

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Services offered in the contact form dropdown. Other values are accepted.
var Services = []string{
	"Web Development",
	"E-Commerce",
	"UI/UX Design",
	"Branding",
	"SEO",
	"Maintenance",
	"Other",
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is a contact request as submitted by a visitor.
type Form struct {
	Name     string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" form:"email" validate:"required,contact_email"`
	Service  string `json:"service" form:"service" validate:"required"`
	Message  string `json:"message" form:"message" validate:"required,min=10,max=2000"`
	Phone    string `json:"phone,omitempty" form:"phone" validate:"max=30"`
	Company  string `json:"company,omitempty" form:"company" validate:"max=100"`
	Budget   string `json:"budget,omitempty" form:"budget" validate:"max=50"`
	Timeline string `json:"timeline,omitempty" form:"timeline" validate:"max=50"`
}

type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register validation tag %q: %v", tag, err))
		}
	}
	mustRegister("contact_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// Trimmed returns the form with surrounding whitespace removed from every field.
func (f Form) Trimmed() Form {
	return Form{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Service:  strings.TrimSpace(f.Service),
		Message:  strings.TrimSpace(f.Message),
		Phone:    strings.TrimSpace(f.Phone),
		Company:  strings.TrimSpace(f.Company),
		Budget:   strings.TrimSpace(f.Budget),
		Timeline: strings.TrimSpace(f.Timeline),
	}
}

// Validate checks every field and returns all problems at once, in field order.
func Validate(f Form) Result {
	err := validate.Struct(f.Trimmed())
	if err == nil {
		return Result{Valid: true, Errors: []string{}}
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Result{Valid: false, Errors: []string{err.Error()}}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, message(fe))
	}
	return Result{Valid: false, Errors: msgs}
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "required" {
			return "Name is required"
		}
		return "Name must be between 2 and 100 characters"
	case "Email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please enter a valid email address"
	case "Service":
		return "Service is required"
	case "Message":
		if fe.Tag() == "required" {
			return "Message is required"
		}
		return "Message must be between 10 and 2000 characters"
	case "Phone":
		return "Phone must be at most 30 characters"
	case "Company":
		return "Company must be at most 100 characters"
	case "Budget":
		return "Budget must be at most 50 characters"
	case "Timeline":
		return "Timeline must be at most 50 characters"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
