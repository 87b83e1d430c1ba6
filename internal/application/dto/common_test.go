package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPage(t *testing.T) {
	cases := []struct {
		name       string
		in         PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"cero toma los valores por defecto", PageRequest{}, 20, 0},
		{"valores válidos se respetan", PageRequest{Limit: 50, Offset: 40}, 50, 40},
		{"límite por encima del tope se acota", PageRequest{Limit: 100000}, 100, 0},
		{"negativos se normalizan", PageRequest{Limit: -3, Offset: -7}, 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.DefaultPage()
			assert.Equal(t, tc.wantLimit, tc.in.Limit)
			assert.Equal(t, tc.wantOffset, tc.in.Offset)
		})
	}
}
