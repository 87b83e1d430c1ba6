package validator

import "github.com/go-playground/validator/v10"

// FieldError describe un campo que no pasó la validación por tags.
type FieldError struct {
	FailedField string
	Tag         string
	Param       string
}

var validate = validator.New()

// ValidateStruct valida un struct según sus tags `validate` y devuelve los campos fallidos.
func ValidateStruct(data interface{}) []FieldError {
	var errs []FieldError
	if err := validate.Struct(data); err != nil {
		for _, ve := range err.(validator.ValidationErrors) {
			errs = append(errs, FieldError{
				FailedField: ve.StructNamespace(),
				Tag:         ve.Tag(),
				Param:       ve.Param(),
			})
		}
	}
	return errs
}
