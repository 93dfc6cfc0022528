// Package httperror contains the error body sent by the API.
package httperror

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// MessageValidation is the detail of every response for a request that failed validation.
const MessageValidation = "Erro de validação"

type Error struct {
	Detail string              `json:"detail" example:"registro não encontrado: evento"`
	Errors map[string][]string `json:"errors,omitempty"` // Messages per field, keyed by the JSON path of the field
}

func New(e error) Error {
	var validationErrors validator.ValidationErrors
	if errors.As(e, &validationErrors) {
		return Validation(validationErrors)
	}

	return Error{
		Detail: e.Error(),
	}
}

// Validation converts validation errors to an error body with one entry per field.
func Validation(errs validator.ValidationErrors) Error {
	e := Error{
		Detail: MessageValidation,
		Errors: make(map[string][]string, len(errs)),
	}

	for _, err := range errs {
		field := fieldPath(err)
		e.Errors[field] = append(e.Errors[field], message(err))
	}

	return e
}

// fieldPath strips the name of the top level struct from the namespace.
func fieldPath(e validator.FieldError) string {
	_, path, found := strings.Cut(e.Namespace(), ".")
	if !found {
		return e.Field()
	}
	return path
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obrigatório"
	case "max":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("deve ter no máximo %s itens", e.Param())
		}
		return fmt.Sprintf("deve ter no máximo %s caracteres", e.Param())
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("deve ter ao menos %s itens", e.Param())
		}
		return fmt.Sprintf("deve ter ao menos %s caracteres", e.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", e.Param())
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", e.Param())
	}
	return "valor inválido"
}

var once sync.Once

// UseJSONFieldNames makes the binding validator report fields by their JSON
// name so that clients can map errors to the fields they sent.
func UseJSONFieldNames() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}
