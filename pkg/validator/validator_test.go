package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ejemplo struct {
	Nombre   string `validate:"required"`
	Cantidad int    `validate:"gt=0"`
	Tipo     string `validate:"oneof=restock return"`
}

func TestValidateStruct_CamposFallidos(t *testing.T) {
	errs := ValidateStruct(ejemplo{Cantidad: -1, Tipo: "transfer"})
	require.Len(t, errs, 3)

	tags := map[string]string{}
	for _, e := range errs {
		tags[e.FailedField] = e.Tag
	}
	assert.Equal(t, "required", tags["ejemplo.Nombre"])
	assert.Equal(t, "gt", tags["ejemplo.Cantidad"])
	assert.Equal(t, "oneof", tags["ejemplo.Tipo"])
}

func TestValidateStruct_Valido(t *testing.T) {
	errs := ValidateStruct(ejemplo{Nombre: "café", Cantidad: 3, Tipo: "restock"})
	assert.Empty(t, errs)
}
