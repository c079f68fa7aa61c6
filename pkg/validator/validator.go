package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	errMsgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"Field: %s, Tag: %s, Param: %s", e.Namespace(), e.Tag(), e.Param(),
		))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}

// IsDate reports whether s is a YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	return validate.Var(s, "required,datetime="+dateLayout) == nil
}

func IsEmail(s string) bool {
	return validate.Var(s, "required,email") == nil
}
