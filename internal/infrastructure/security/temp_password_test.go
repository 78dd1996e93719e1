package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempPasswordGenerator(t *testing.T) {
	gen := NewTempPasswordGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		pw, err := gen.Generate()
		require.NoError(t, err)
		assert.Len(t, pw, tempPasswordLength)
		for _, ch := range pw {
			assert.True(t, strings.ContainsRune(tempPasswordAlphabet, ch),
				"carácter fuera del alfabeto: %q", ch)
		}
		seen[pw] = true
	}
	// Con 12 caracteres sobre ~54 símbolos una colisión es despreciable.
	assert.Len(t, seen, 50, "las contraseñas generadas deben ser distintas")
}

// El alfabeto excluye los pares ambiguos al dictar (0/O, 1/l/I).
func TestTempPasswordAlphabet_SinAmbiguos(t *testing.T) {
	for _, ch := range "0O1lI" {
		assert.False(t, strings.ContainsRune(tempPasswordAlphabet, ch), string(ch))
	}
}
