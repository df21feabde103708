// Package validation holds the request rules that struct tags alone cannot
// express and turns validator failures into caller-facing messages.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/SscSPs/price_listing_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// PriceTag is the struct tag that applies the price rule.
const PriceTag = "price"

// PriceMessage is reported for any price that fails the price rule.
const PriceMessage = "Price must be only numbers with(out) 2 decimal places."

var pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ValidPrice reports whether s is a non-negative number with at most two
// fractional digits that fits the stored precision.
func ValidPrice(s string) bool {
	if !pricePattern.MatchString(s) {
		return false
	}
	integerPart, _, _ := strings.Cut(s, ".")
	return len(strings.TrimLeft(integerPart, "0")) <= domain.PriceMaxDigits-domain.PriceScale
}

func validatePrice(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return ValidPrice(field.String())
}

// Register installs the custom rules on v and makes field errors report
// JSON names instead of Go field names.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			name, _, _ = strings.Cut(fld.Tag.Get("form"), ",")
		}
		return name
	})
	return v.RegisterValidation(PriceTag, validatePrice)
}

// RegisterWithGin installs the custom rules on gin's default binding engine.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}

// IsRuleFailure reports whether err came from a failed validation rule rather
// than from decoding.
func IsRuleFailure(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// Messages maps "field.tag" (or just "field") to the message reported when
// that rule fails.
type Messages map[string]string

// Message picks the caller-facing text for a validation failure. The first
// failing field wins; unmapped failures fall back to a generic sentence.
func Message(err error, msgs Messages) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request data"
	}
	fe := verrs[0]
	if msg, ok := msgs[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := msgs[fe.Field()]; ok {
		return msg
	}
	if fe.Tag() == PriceTag {
		return PriceMessage
	}
	switch fe.Tag() {
	case "required":
		return "The " + fe.Field() + " field is required"
	case "max":
		return "The " + fe.Field() + " field must not exceed " + fe.Param() + " characters"
	case "min":
		return "The " + fe.Field() + " field must be at least " + fe.Param()
	}
	return "Invalid value for " + fe.Field()
}
