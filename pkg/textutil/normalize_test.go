package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	cases := map[string]string{
		"Depósito":      "deposito",
		"  CAMIÓN  ":    "camion",
		"ñandú":         "nandu",
		"sin tildes":    "sin tildes",
		"":              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Fold(in), "Fold(%q)", in)
	}
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Depósito Central", "deposito"))
	assert.True(t, ContainsFold("Depósito Central", "CENTRAL"))
	assert.True(t, ContainsFold("Tornillería", "tornilleria"))
	assert.True(t, ContainsFold("lo que sea", ""))
	assert.False(t, ContainsFold("Depósito Central", "sur"))
}
