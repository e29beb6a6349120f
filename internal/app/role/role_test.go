package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFlags(t *testing.T) {
	assert.Equal(t, Customer, FromFlags(false, false))
	assert.Equal(t, Staff, FromFlags(true, false))
	assert.Equal(t, Superuser, FromFlags(false, true))
	assert.Equal(t, Superuser, FromFlags(true, true))
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required Role
		want     bool
	}{
		{"customer as customer", Customer, Customer, true},
		{"customer as staff", Customer, Staff, false},
		{"staff as staff", Staff, Staff, true},
		{"staff as customer", Staff, Customer, false},
		{"superuser as staff", Superuser, Staff, true},
		{"superuser as customer", Superuser, Customer, true},
		{"staff as superuser", Staff, Superuser, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Satisfies(tt.required))
		})
	}
}
