package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSboxBijective(t *testing.T) {
	var seen [256]bool
	for i := 0; i < 256; i++ {
		v := sbox[i]
		assert.False(t, seen[v], "value 0x%02X appears twice", v)
		seen[v] = true
	}
}

func TestSboxInverseExact(t *testing.T) {
	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), invSbox[sbox[i]], "invSbox[sbox[0x%02X]]", i)
		assert.Equal(t, byte(i), sbox[invSbox[i]], "sbox[invSbox[0x%02X]]", i)
	}
}
