package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("50.5:100000"))
	b := Fingerprint([]byte("50.5:100000"))
	c := Fingerprint([]byte("50.5:100001"))

	assert.Equal(t, a, b, "identical input must produce identical fingerprints")
	assert.NotEqual(t, a, c, "different input must produce different fingerprints")
}

func TestFingerprintString(t *testing.T) {
	s := "listing"
	assert.Equal(t, Fingerprint([]byte(s)), FingerprintString(s))
}

func TestFingerprintEmpty(t *testing.T) {
	assert.Equal(t, Fingerprint(nil), Fingerprint([]byte{}))
}
