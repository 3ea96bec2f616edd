package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hairlogy/barber-booking/internal/timezone"
)

// New returns a validator that reports fields by their json names and
// knows the isodate and hhmm tags.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(timezone.DateLayout, fl.Field().String())
		return err == nil
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(timezone.TimeLayout, fl.Field().String())
		return err == nil
	})

	return v
}

// Message flattens validation errors into one readable line.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fe.Field()))
		case "isodate":
			parts = append(parts, fmt.Sprintf("%s must be a YYYY-MM-DD date", fe.Field()))
		case "hhmm":
			parts = append(parts, fmt.Sprintf("%s must be a HH:MM time", fe.Field()))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", fe.Field()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return strings.Join(parts, "; ")
}
