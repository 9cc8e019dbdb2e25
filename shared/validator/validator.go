// Package validator decodes request bodies and applies struct tag rules, reporting the
// first violation as a bad request failure named after the JSON field.
package validator

import (
	"encoding/json"
	"errors"
	"fieldserve/shared/constant"
	"fieldserve/shared/failure"
	"fieldserve/shared/money"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidate()

var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

var rules = map[string]val.Func{
	"decimal":      decimalRule,
	"cents":        centsRule,
	"pincode":      func(fl val.FieldLevel) bool { return pincodePattern.MatchString(fl.Field().String()) },
	"businessdate": layoutRule(constant.BusinessDateFormat),
	"clock":        layoutRule(constant.ClockFormat),
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				break
			}

			if name != constant.Empty {
				return name
			}
		}

		return field.Name
	})

	for tag, rule := range rules {
		if err := v.RegisterValidation(tag, rule); err != nil {
			panic(fmt.Sprintf("validator: register %s: %v", tag, err))
		}
	}

	return v
}

// decimalRule accepts decimal strings. The param narrows the sign: positive or nonnegative.
func decimalRule(fl val.FieldLevel) bool {
	value := fl.Field().String()
	if value == constant.Empty {
		return true
	}

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return false
	}

	switch fl.Param() {
	case "positive":
		return amount.IsPositive()
	case "nonnegative":
		return !amount.IsNegative()
	default:
		return true
	}
}

// centsRule rejects amounts finer than the minor unit. Unparseable input is left to decimalRule.
func centsRule(fl val.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return true
	}

	return money.HasMinorPrecision(amount)
}

func layoutRule(layout string) val.Func {
	return func(fl val.FieldLevel) bool {
		value := fl.Field().String()
		if value == constant.Empty {
			return true
		}

		_, err := time.Parse(layout, value)

		return err == nil
	}
}

// Validate decodes a single JSON document from r into data and validates it.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
		}

		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if decoder.More() {
		return failure.BadRequestFromString("request body must contain a single JSON document") //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar checks a single value against tag, e.g. a path or query parameter.
func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
