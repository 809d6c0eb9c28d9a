package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	reHex32   = regexp.MustCompile(`^[a-f0-9]{32}$`)
	reCaseNum = regexp.MustCompile(`^EXP-\d{4}-\d{4}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// request id = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	// urgency level, empty means "use the default"
	_ = v.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "ordinary", "urgent", "very_urgent":
			return true
		}
		return false
	})
	// case number shape EXP-YYYY-NNNN (auto-generated numbers always match)
	_ = v.RegisterValidation("casenum", func(fl validator.FieldLevel) bool {
		return reCaseNum.MatchString(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field() // you can map to json tag if you prefer
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "urgency":
			out = append(out, FieldError{Field: field, Message: "must be one of ordinary, urgent, very_urgent"})
		case "casenum":
			out = append(out, FieldError{Field: field, Message: "must match EXP-YYYY-NNNN"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
