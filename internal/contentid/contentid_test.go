package contentid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDForDeterministic(t *testing.T) {
	b := []byte("same-bytes")
	assert.Equal(t, UUIDFor(b), UUIDFor(b))
	assert.Equal(t, UUIDFor(b).String(), UUIDFor(b).String())
}

func TestUUIDForDistinctInputs(t *testing.T) {
	assert.NotEqual(t, UUIDFor([]byte("one")), UUIDFor([]byte("two")))
	assert.NotEqual(t, UUIDFor([]byte{}), UUIDFor([]byte{0}))
}

func TestUUIDForKnownDigest(t *testing.T) {
	// md5("hello world") = 5eb63bbbe01eeed093cb22bb8f5acdc3, with the
	// version and variant bits folded in.
	u := UUIDFor([]byte("hello world"))
	assert.Equal(t, "5eb63bbb-e01e-4ed0-93cb-22bb8f5acdc3", u.String())
}

func TestUUIDForShape(t *testing.T) {
	u := UUIDFor([]byte("anything at all"))
	assert.Equal(t, byte(0x40), u[6]&0xf0, "version nibble")
	assert.Equal(t, byte(0x80), u[8]&0xc0, "variant bits")
}

func TestUUIDForEmptyInput(t *testing.T) {
	// Zero-length payloads still hash to a stable identifier.
	assert.Equal(t, UUIDFor(nil), UUIDFor([]byte{}))
}
