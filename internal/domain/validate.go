package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validator.Validate caches struct metadata and is safe for concurrent use.
var validate = newValidator()

// newValidator reports fields by their JSON names so errors match the wire.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateCoordinate checks c against its lat/lon range tags and reports the
// first violation as an InvalidRequestError for field.
func ValidateCoordinate(field string, c Coordinate) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &InvalidRequestError{
			Field:  field + "." + fe.Field(),
			Reason: fmt.Sprintf("value %v violates %s=%s", fe.Value(), fe.Tag(), fe.Param()),
		}
	}

	return &InvalidRequestError{Field: field, Reason: err.Error()}
}
