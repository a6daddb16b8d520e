package validators

import (
	"patientsapi/cmd/internal/utils"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Register installs the custom rules and makes validation errors report
// JSON field names.
func Register(validate *validator.Validate) {
	validate.RegisterTagNameFunc(jsonTagName)
	_ = validate.RegisterValidation("timestamp", IsTimestamp)
}

// IsTimestamp accepts the ISO 8601 forms understood by utils.FromTimestamp.
func IsTimestamp(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	_, err := utils.FromTimestamp(field.String())
	return err == nil
}

func jsonTagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
