package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

// rules whose messages are replaced with the dashboard's wording
var messageOverrides = map[string]func(validator.FieldError) string{
	"email": func(validator.FieldError) string {
		return "Invalid email address"
	},
	"min": func(fe validator.FieldError) string {
		return fmt.Sprintf("%s must be at least %s characters long", fieldLabel(fe.Field()), fe.Param())
	},
	"eqfield": func(validator.FieldError) string {
		return "Passwords don't match"
	},
}

// FieldErrors maps form field names to the message of their first failing rule
type FieldErrors map[string]string

// Has reports whether the given field failed validation
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Validator evaluates form schemas declared with `validate` struct tags
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator creates a Validator reporting errors under the fields' `form` tag names
func NewValidator() (*Validator, error) {
	validate := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, errors.Wrap(err, "could not register default translations")
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// the default translation is already registered, a noop satisfies RegisterTranslation
	registerFn := func(ut.Translator) error { return nil }
	for tag, message := range messageOverrides {
		message := message
		err := validate.RegisterTranslation(tag, translator, registerFn, func(_ ut.Translator, fe validator.FieldError) string {
			return message(fe)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "could not register translation for %s", tag)
		}
	}

	return &Validator{
		validate:   validate,
		translator: translator,
	}, nil
}

// Validate checks the form against its schema and returns nil when it is valid
func (v *Validator) Validate(form interface{}) FieldErrors {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return FieldErrors{"": err.Error()}
	}

	fieldErrs := make(FieldErrors, len(validationErrs))
	for _, fe := range validationErrs {
		if _, exists := fieldErrs[fe.Field()]; exists {
			continue
		}
		fieldErrs[fe.Field()] = fe.Translate(v.translator)
	}

	return fieldErrs
}

// fieldLabel turns a field name such as confirmPassword into "Confirm password"
func fieldLabel(field string) string {
	if field == "" {
		return field
	}

	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			b.WriteRune(' ')
			b.WriteString(strings.ToLower(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
