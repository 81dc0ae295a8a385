package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida: los validadores compilados se cachean.
var validate = validator.New()

// validateStruct corre las reglas de los tags `validate` del DTO y devuelve
// un mensaje legible con los campos que fallaron.
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("campos inválidos: %s", strings.Join(fields, ", "))
}
