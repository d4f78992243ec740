package book

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("notblank", validators.NotBlank)
	validate.RegisterValidation("genre", validateGenre)
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func validateGenre(fl validator.FieldLevel) bool {
	return Genre(fl.Field().String()).Valid()
}

// Validate checks the book invariants: title, author and isbn must not be
// blank, genre must be present and known, and the page count must be positive.
func (b Book) Validate() error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidBook, err)
	}

	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		field := fe.Field()

		var message string
		switch fe.Tag() {
		case "notblank":
			message = fmt.Sprintf("%s must not be blank", field)
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "genre":
			message = fmt.Sprintf("%s %q is not a known genre", field, fe.Value())
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		out.Fields = append(out.Fields, FieldError{Field: field, Message: message})
	}
	return out
}
