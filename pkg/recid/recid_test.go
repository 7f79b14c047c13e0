package recid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		assert.True(t, Valid(id), "New debe producir RecIDs válidos: %q", id)
		assert.False(t, seen[id], "RecID repetido: %q", id)
		seen[id] = true
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("abc123def4"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("abc123def"))    // corto
	assert.False(t, Valid("abc123def45"))  // largo
	assert.False(t, Valid("ABC123DEF4"))   // mayúsculas
	assert.False(t, Valid("abc123defg"))   // g no es hex
}
