package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "orders")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "ordermanager")

	assert.Equal(t, "host=db port=5432 user=orders password=secret dbname=ordermanager sslmode=disable", FromEnv())
}

func TestFromEnvMissing(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", "ordermanager")
	assert.Empty(t, FromEnv())

	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "")
	assert.Empty(t, FromEnv())
}
