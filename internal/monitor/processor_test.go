package monitor

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint_KnownVectors(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Fingerprint(""))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", Fingerprint("abc"))
}

func TestFingerprint_DeterministicAndSensitive(t *testing.T) {
	p := NewProcessor(zerolog.Nop())
	a := p.Fingerprint(`<div id="content">Hello</div>`)
	assert.Equal(t, a, p.Fingerprint(`<div id="content">Hello</div>`))
	assert.NotEqual(t, a, p.Fingerprint(`<div id="content">Hellp</div>`))
	assert.Len(t, a, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", a)
}

func TestFingerprint_UTF8(t *testing.T) {
	assert.NotEqual(t, Fingerprint("café"), Fingerprint("cafe"))
	assert.Len(t, Fingerprint("日本語"), 64)
}
