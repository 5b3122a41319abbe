package utils

import (
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/exceptions"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	emailRegex       = regexp.MustCompile(constvars.RegexEmail)
	phoneRegex       = regexp.MustCompile(constvars.RegexPhone)
	phoneStripRegex  = regexp.MustCompile(constvars.RegexPhoneSeparators)
	acceptedDateForm = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		time.DateOnly,
	}
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("email_format", validateEmailFormat)
	validate.RegisterValidation("phone", validatePhone)
	validate.RegisterValidation("date_any", validateDateAny)
}

// ValidateStruct runs struct tag validation and converts the first failure
// into a ValidationError wrapped in a CustomError.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phoneStripRegex.ReplaceAllString(phone, ""))
}

func ParseAnyDate(value string) (time.Time, bool) {
	for _, layout := range acceptedDateForm {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func validateEmailFormat(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func validateDateAny(fl validator.FieldLevel) bool {
	_, ok := ParseAnyDate(fl.Field().String())
	return ok
}
