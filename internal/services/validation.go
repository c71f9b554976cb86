package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-talent-map/internal/apperrors"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
)

// Form-level violation reported when the password confirmation differs
const reasonPasswordMismatch = "passwords do not match"

var usernameRe = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// accountInput holds the account fields checked at registration
type accountInput struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	Email     string `json:"email" validate:"required,max=254,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Password  string `json:"password" validate:"required"`
}

// profileInput holds the owner-editable profile fields after merging
type profileInput struct {
	EducationLevel string `json:"education_level" validate:"education_level"`
	Bio            string `json:"bio" validate:"required"`
	LinkedIn       string `json:"linkedin" validate:"omitempty,max=500,http_url"`
	GitHub         string `json:"github" validate:"omitempty,max=500,http_url"`
	YouTube        string `json:"youtube" validate:"omitempty,max=500,http_url"`
	Website        string `json:"website" validate:"omitempty,max=500,http_url"`
}

// collaborationInput holds the requester-supplied collaboration fields
type collaborationInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

// Validator checks workflow inputs and reports every violation at once
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator reporting JSON field names
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("education_level", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := models.ParseEducationLevel(s)
		return err == nil
	}, true)
	return &Validator{validate: v}
}

// Struct validates i and converts failures into apperrors.ValidationErrors
func (v *Validator) Struct(i any) apperrors.ValidationErrors {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ValidationErrors{{Reason: err.Error()}}
	}

	out := make(apperrors.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, apperrors.ValidationError{Field: fe.Field(), Reason: reason(fe)})
	}
	return out
}

// reason formats a single validation error to a user-friendly message
func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
	case "email":
		return "enter a valid email address"
	case "username":
		return "enter a valid username: letters, digits and @/./+/-/_ only"
	case "http_url":
		return "enter a valid http or https URL"
	case "education_level":
		return fmt.Sprintf("select a valid choice: %q is not one of the available choices", fe.Value())
	default:
		return "invalid value"
	}
}

// validateRegistration collects account, password and profile violations
func (v *Validator) validateRegistration(reg models.Registration) apperrors.ValidationErrors {
	errs := v.Struct(accountInput{
		Username:  reg.Username,
		Email:     reg.Email,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Password:  reg.Password,
	})

	if reg.PasswordConfirm != nil && *reg.PasswordConfirm != reg.Password {
		errs = append(errs, apperrors.ValidationError{Reason: reasonPasswordMismatch})
	}

	errs = append(errs, v.Struct(profileInputFromFields(reg.Profile))...)

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validateProfileEdit checks a merged profile before it is written back.
// Unlike registration, a blank education level has no default to fall back to.
func (v *Validator) validateProfileEdit(p *models.ProfileDB) apperrors.ValidationErrors {
	errs := v.Struct(profileInputFromDB(p))

	level, err := models.ParseEducationLevel(string(p.EducationLevel))
	if err != nil && !errs.Has("education_level") {
		errs = append(errs, apperrors.ValidationError{
			Field:  "education_level",
			Reason: fmt.Sprintf("select a valid choice: %q is not one of the available choices", p.EducationLevel),
		})
	}

	if len(errs) == 0 {
		p.EducationLevel = level
		return nil
	}
	return errs
}

func profileInputFromFields(f models.ProfileFields) profileInput {
	return profileInput{
		EducationLevel: f.EducationLevel,
		Bio:            f.Bio,
		LinkedIn:       f.LinkedIn,
		GitHub:         f.GitHub,
		YouTube:        f.YouTube,
		Website:        f.Website,
	}
}

func profileInputFromDB(p *models.ProfileDB) profileInput {
	return profileInput{
		EducationLevel: string(p.EducationLevel),
		Bio:            p.Bio,
		LinkedIn:       p.LinkedIn,
		GitHub:         p.GitHub,
		YouTube:        p.YouTube,
		Website:        p.Website,
	}
}
