package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"table-booking/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// Register installs the booking validators on gin's default validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	for tag, fn := range map[string]validator.Func{
		"bookingdate": isBookingDate,
		"clocktime":   isClockTime,
		"phone":       isPhone,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validator: %w", tag, err)
		}
	}
	return nil
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func isBookingDate(fl validator.FieldLevel) bool {
	_, err := reservation.ParseDate(fl.Field().String())
	return err == nil
}

func isClockTime(fl validator.FieldLevel) bool {
	_, err := reservation.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

// isPhone accepts digits with common separators and an optional leading +.
func isPhone(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	digits := 0
	for i, r := range raw {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '(', r == ')', r == '.':
		default:
			return false
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

// FieldErrors maps each failing field to a readable message, or returns nil
// when err is not a validation error.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath drops the root struct name: "CreateBookingRequest.specialRequests.notes" -> "specialRequests.notes".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "uuid":
		return "Must be a valid UUID"
	case "min", "gte":
		return fmt.Sprintf("Minimum is %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("Maximum is %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "bookingdate":
		return "Must be a date formatted as YYYY-MM-DD"
	case "clocktime":
		return "Must be a time formatted as HH:MM or HH:MM:SS"
	case "phone":
		return "Must be a phone number"
	default:
		return fmt.Sprintf("Invalid %s field", fe.Field())
	}
}
