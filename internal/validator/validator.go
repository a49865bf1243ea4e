// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	barcodeRegex = regexp.MustCompile(`^[0-9]{4,32}$`)
	registerOnce sync.Once
)

// DateLayout is the calendar-date format accepted for purchase dates.
const DateLayout = "2006-01-02"

// Register registers all custom validators with the Gin binding engine.
// It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
			v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
			_ = v.RegisterValidation("calendar_date", validateCalendarDate)
			_ = v.RegisterValidation("barcode", validateBarcode)
		}
	})
}

// Describe renders a request binding failure as a client-facing message that
// names fields by their JSON path.
func Describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, describeField(fe))
		}
		return strings.Join(msgs, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + " has the wrong type"
	}
	return "Malformed request body"
}

// ParseDate parses a calendar date (YYYY-MM-DD) or an RFC3339 timestamp and
// returns midnight UTC of that day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// IsBarcode reports whether s looks like a retail barcode.
func IsBarcode(s string) bool {
	return barcodeRegex.MatchString(s)
}

func describeField(fe validator.FieldError) string {
	path := fe.Field()
	// Namespace starts with the Go struct name.
	if i := strings.IndexByte(fe.Namespace(), '.'); i >= 0 {
		path = fe.Namespace()[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "min":
		return fmt.Sprintf("%s must contain at least %s item", path, fe.Param())
	case "calendar_date":
		return path + " must be a date in YYYY-MM-DD form"
	case "barcode":
		return path + " must be a numeric barcode"
	default:
		return path + " is invalid"
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// decimalValue lets validator tags such as required see a decimal as a float.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func validateBarcode(fl validator.FieldLevel) bool {
	return IsBarcode(fl.Field().String())
}
