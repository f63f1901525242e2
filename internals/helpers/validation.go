// file: internals/helpers/validation.go
package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct valida un DTO y devuelve los errores por campo en el formato
// {campo: [mensajes]} del envelope JSON. nil si todo es válido.
func ValidateStruct(s any) map[string][]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	out := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], tagMessage(fe))
		}
		return out
	}
	out["_"] = []string{err.Error()}
	return out
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "no es un correo válido"
	case "min":
		return "es menor al mínimo permitido (" + fe.Param() + ")"
	case "max":
		return "supera el máximo permitido (" + fe.Param() + ")"
	case "gte":
		return "debe ser mayor o igual a " + fe.Param()
	case "lte":
		return "debe ser menor o igual a " + fe.Param()
	case "len":
		return "debe tener longitud " + fe.Param()
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "uppercase":
		return "debe estar en mayúsculas"
	default:
		return "no es válido (" + fe.Tag() + ")"
	}
}
