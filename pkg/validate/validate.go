package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// "luhn" accepts digit strings whose last digit is a valid Luhn check digit
	validate.RegisterValidation("luhn", func(fl validator.FieldLevel) bool {
		return OrderNumber(fl.Field().String())
	})
	return validate
}

// Struct checks the `validate` tags of s and returns a message naming every failed field.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// OrderNumber reports whether number is a non-empty order reference with a valid check digit.
func OrderNumber(number string) bool {
	if number == "" {
		return false
	}
	return goluhn.Validate(number) == nil
}
