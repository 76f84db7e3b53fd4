package book

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingName              = &ValidationError{Field: "name", Message: "missing name"}
	ErrReadPageExceedsPageCount = &ValidationError{Field: "readPage", Message: "readPage exceeds pageCount"}
	ErrNegativePage             = &ValidationError{Field: "pageCount", Message: "negative page value"}
)

// ValidationError reports input the caller has to fix before retrying.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches validation errors by message so wrapped copies compare equal
// to the package sentinels.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

var validate = validator.New()

// Validate checks in against the catalog rules. Only one error is reported,
// in this order: missing name, readPage over pageCount, negative pages.
func Validate(in Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var missingName, exceeds, negative bool
	for _, fe := range fieldErrs {
		switch {
		case fe.Field() == "Name":
			missingName = true
		case fe.Tag() == "ltefield":
			exceeds = true
		case fe.Tag() == "gte":
			negative = true
		}
	}

	switch {
	case missingName:
		return ErrMissingName
	case exceeds:
		return ErrReadPageExceedsPageCount
	case negative:
		return ErrNegativePage
	}
	return err
}
