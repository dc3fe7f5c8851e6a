package helper

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strconv"
	"strings"

	"blog-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

// FieldErrors maps a request field name to every message that applies to it.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// NewValidator returns a validator that names fields after their json or form
// tag and an English translator for its messages.
func NewValidator() (*validator.Validate, ut.Translator, error) {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(fieldName)

	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, err
	}

	rules := []struct {
		tag     string
		fn      validator.Func
		message string
	}{
		{"positive_int", isListValue, "{0} must be a positive integer no greater than " + strconv.Itoa(models.MaxListValue)},
		{"positive_id", isID, "{0} must be a positive integer id"},
	}
	for _, rule := range rules {
		if err := registerRule(validate, trans, rule.tag, rule.fn, rule.message); err != nil {
			return nil, nil, err
		}
	}

	return validate, trans, nil
}

func registerRule(validate *validator.Validate, trans ut.Translator, tag string, fn validator.Func, message string) error {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		return err
	}
	return validate.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, message, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		})
}

// isListValue accepts what models.ParseListValue accepts.
func isListValue(fl validator.FieldLevel) bool {
	_, ok := models.ParseListValue(fl.Field().String())
	return ok
}

// isID accepts what models.ParseID accepts.
func isID(fl validator.FieldLevel) bool {
	_, ok := models.ParseID(fl.Field().String())
	return ok
}

func fieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// ValidateStruct returns every violated rule on v, or nil when v is valid.
func (u *HTTPHelper) ValidateStruct(v interface{}) FieldErrors {
	err := u.Validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FieldErrors{"body": {err.Error()}}
	}

	fieldErrors := FieldErrors{}
	for _, fe := range validationErrors {
		fieldErrors.Add(fe.Field(), fe.Translate(u.Translator))
	}
	return fieldErrors
}

// BindJSON decodes the request body into dst and validates it. An empty body
// is validated as an empty object.
func (u *HTTPHelper) BindJSON(c *gin.Context, dst interface{}) FieldErrors {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return decodeErrors(err)
	}
	return u.ValidateStruct(dst)
}

// BindQuery reads the query string into dst and validates it.
func (u *HTTPHelper) BindQuery(c *gin.Context, dst interface{}) FieldErrors {
	if err := c.ShouldBindQuery(dst); err != nil {
		return FieldErrors{"query": {err.Error()}}
	}
	return u.ValidateStruct(dst)
}

func decodeErrors(err error) FieldErrors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return FieldErrors{typeErr.Field: {typeErr.Field + " must be of type " + jsonKind(typeErr.Type)}}
	}
	return FieldErrors{"body": {"Request body must be valid JSON"}}
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.Kind().String()
	}
}
