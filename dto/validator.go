package dto

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	initOnce   sync.Once
	validate   *validator.Validate
	translator ut.Translator
)

func setup() {
	validate = validator.New()
	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// report json names instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterTranslation("required", translator,
		func(t ut.Translator) error { return t.Add("required", "{0} is required", true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T("required", fe.Field())
			return s
		},
	)
}

// Validate checks the validate tags of v.
func Validate(v any) error {
	initOnce.Do(setup)
	return validate.Struct(v)
}

// ValidationMessage renders validator errors as one line. ok is false when
// err did not come from the validator.
func ValidationMessage(err error) (msg string, ok bool) {
	initOnce.Do(setup)
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "", false
	}
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fe.Translate(translator))
	}
	return strings.Join(parts, "; "), true
}
