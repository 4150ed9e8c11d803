package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvPrefersLoadedFile(t *testing.T) {
	Env = map[string]string{"APP_PORT": "4100"}
	t.Cleanup(func() { Env = nil })
	t.Setenv("APP_PORT", "9999")

	assert.Equal(t, "4100", GetEnv("APP_PORT", "4000"))
}

func TestGetEnvFallsBackToProcessEnv(t *testing.T) {
	Env = map[string]string{}
	t.Cleanup(func() { Env = nil })
	t.Setenv("STUDIO_TEST_KEY", "from-os")

	assert.Equal(t, "from-os", GetEnv("STUDIO_TEST_KEY", "def"))
	assert.Equal(t, "def", GetEnv("STUDIO_TEST_MISSING", "def"))
}

func TestGetEnvIntAndBool(t *testing.T) {
	Env = map[string]string{"N": "12", "BAD": "x", "B": "true"}
	t.Cleanup(func() { Env = nil })

	assert.Equal(t, 12, GetEnvInt("N", 1))
	assert.Equal(t, 1, GetEnvInt("BAD", 1))
	assert.True(t, GetEnvBool("B", false))
	assert.False(t, GetEnvBool("BAD", false))
}

func TestIsDev(t *testing.T) {
	Env = map[string]string{"APP_ENV": "dev"}
	t.Cleanup(func() { Env = nil })

	assert.True(t, IsDev())
}
