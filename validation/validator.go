// Package validation wires go-playground validator with english messages
// and the database backed rules used by the request DTOs.
package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"berita-api/models"
	"berita-api/repositories"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// ImageTypes lists the accepted upload content types.
var ImageTypes = []string{"image/jpeg", "image/png"}

type Validator struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func New(beritaRepo repositories.BeritaRepository, userRepo repositories.UserRepository) (*Validator, error) {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(fieldName)

	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	rules := map[string]validator.Func{
		"image_mime": isImage,
		"max_kb":     maxKilobytes,
		"berita_exists": func(fl validator.FieldLevel) bool {
			id, ok := rowID(fl.Field())
			if !ok {
				return false
			}
			exists, err := beritaRepo.Exists(id)
			return err == nil && exists
		},
		"email_available": func(fl validator.FieldLevel) bool {
			taken, err := userRepo.EmailExists(fl.Field().String())
			return err == nil && !taken
		},
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, err
		}
	}

	messages := map[string]string{
		"required":        "The {0} field is required.",
		"max":             "The {0} field must not be greater than {1} characters.",
		"min":             "The {0} field must be at least {1} characters.",
		"email":           "The {0} field must be a valid email address.",
		"string":          "The {0} field must be a string.",
		"image_mime":      "The {0} field must be a file of type: jpeg, png, jpg.",
		"max_kb":          "The {0} field must not be greater than {1} kilobytes.",
		"berita_exists":   "The selected {0} is invalid.",
		"email_available": "The {0} has already been taken.",
	}
	for tag, text := range messages {
		if err := validate.RegisterTranslation(tag, trans, register(tag, text), translate); err != nil {
			return nil, err
		}
	}

	return &Validator{Validate: validate, Translator: trans}, nil
}

// Check validates s and wraps field failures in models.ErrorValidation.
func (v *Validator) Check(s interface{}) error {
	err := v.Validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return models.ErrorValidation{Errors: v.Messages(verrs)}
	}
	return err
}

// Reject validates s like Check and reports field as failing tag, in place
// of whatever the field's zero value produced.
func (v *Validator) Reject(s interface{}, field, tag string) error {
	errs := map[string][]string{}
	if err := v.Check(s); err != nil {
		var verr models.ErrorValidation
		if !errors.As(err, &verr) {
			return err
		}
		errs = verr.Errors
	}
	errs[field] = []string{v.Message(field, tag)}
	return models.ErrorValidation{Errors: errs}
}

// Message renders the text registered for tag against field.
func (v *Validator) Message(field, tag string) string {
	msg, err := v.Translator.T(tag, field)
	if err != nil {
		return "The " + field + " field is invalid."
	}
	return msg
}

// Messages groups the translated failures by request field name.
func (v *Validator) Messages(verrs validator.ValidationErrors) map[string][]string {
	out := map[string][]string{}
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], fe.Translate(v.Translator))
	}
	return out
}

func fieldName(fld reflect.StructField) string {
	if label := fld.Tag.Get("label"); label != "" {
		return label
	}
	for _, key := range []string{"form", "json"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

var inputType = reflect.TypeOf(models.Input(""))

func isImage(fl validator.FieldLevel) bool {
	// a gambar sent as text is never an upload
	if fl.Field().Type() == inputType {
		return false
	}
	got := fl.Field().String()
	for _, t := range ImageTypes {
		if got == t {
			return true
		}
	}
	return false
}

func rowID(field reflect.Value) (uint, bool) {
	switch field.Kind() {
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		return uint(field.Uint()), field.Uint() > 0
	case reflect.String:
		return models.Input(field.String()).Uint()
	}
	return 0, false
}

func maxKilobytes(fl validator.FieldLevel) bool {
	limit, err := strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil {
		return false
	}
	return fl.Field().Int() <= limit*1024
}

func register(tag, text string) validator.RegisterTranslationsFunc {
	return func(trans ut.Translator) error {
		return trans.Add(tag, text, true)
	}
}

func translate(trans ut.Translator, fe validator.FieldError) string {
	msg, err := trans.T(fe.Tag(), fe.Field(), fe.Param())
	if err != nil {
		return fe.(error).Error()
	}
	return msg
}
