package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURLNormalisesEmail(t *testing.T) {
	want := "https://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?s=40&d=mp"
	assert.Equal(t, want, GravatarURL("MyEmailAddress@example.com ", 40))
	assert.Equal(t, want, GravatarURL("myemailaddress@example.com", 40))
}

func TestGravatarURLDefaultSize(t *testing.T) {
	assert.Contains(t, GravatarURL("a@example.com", 0), "?s=80&")
}
