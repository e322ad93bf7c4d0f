package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"todoapi/shared/failure"
	"todoapi/shared/optional"
)

var validate *val.Validate

type validationValuer interface {
	ValidationValue() any
}

// optionalValue lets rules on optional.Field apply to the carried value.
func optionalValue(field reflect.Value) any {
	if v, ok := field.Interface().(validationValuer); ok {
		return v.ValidationValue()
	}

	return nil
}

// jsonName reports fields by their JSON key so messages match the payload.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)
	validate.RegisterCustomTypeFunc(optionalValue,
		optional.Field[string]{},
		optional.Field[int]{},
	)

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// Decode reads a JSON document from r into data. Decoding problems are
// reported as unprocessable input.
func Decode[T any](r io.Reader, data *T) error {
	if r == nil {
		return failure.UnprocessableEntity("request body is required") //nolint:wrapcheck
	}

	if err := json.NewDecoder(r).Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.UnprocessableEntity("request body is required") //nolint:wrapcheck
		}

		return failure.UnprocessableEntity(fmt.Sprintf("failed to decode request body: %v", err)) //nolint:wrapcheck
	}

	return nil
}

// Validate decodes r into data and then validates the struct.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.UnprocessableEntity(message(err)) //nolint:wrapcheck
	}

	return nil
}
