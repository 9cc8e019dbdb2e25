package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const defaultField = "value"

var templates = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"max":      "{field} must be at most {param}",
	"min":      "{field} must be at least {param}",
	"oneof":    "{field} must be one of: {param}",
	"email":    "{field} must be a valid email address",
	"pincode":  "{field} must be a valid 6-digit pincode",
	"cents":    "{field} must have at most 2 decimal places",

	"businessdate": "{field} must be a date in YYYY-MM-DD format",
	"clock":        "{field} must be a time in HH:MM format",
}

// decimalTemplates are keyed by the rule param.
var decimalTemplates = map[string]string{
	"":            "{field} must be a valid amount",
	"positive":    "{field} must be a positive amount",
	"nonnegative": "{field} must not be a negative amount",
}

// message renders the first failed rule. Unknown rules fall back to the library text.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err.Error()
	}

	for _, fe := range fieldErrors {
		template, ok := templates[fe.Tag()]
		if fe.Tag() == "decimal" {
			template, ok = decimalTemplates[fe.Param()]
		}

		if !ok {
			continue
		}

		field := fe.Field()
		if field == "" {
			field = defaultField
		}

		return strings.NewReplacer("{field}", field, "{param}", strings.ReplaceAll(fe.Param(), " ", ", ")).Replace(template)
	}

	return fieldErrors[0].Error()
}
