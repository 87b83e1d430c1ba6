package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("cualquier-cosa"))
}

func TestNew_AplicaElNivel(t *testing.T) {
	l := New("production", "error")
	assert.Equal(t, zerolog.ErrorLevel, l.zl.GetLevel())

	l = New("development", "")
	assert.Equal(t, zerolog.InfoLevel, l.zl.GetLevel())
}
