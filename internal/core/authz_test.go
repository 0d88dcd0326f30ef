package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminPolicyExactMatch(t *testing.T) {
	policy := NewAdminPolicy([]string{"admin@astroguru.lk"})

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "exact match", email: "admin@astroguru.lk", want: true},
		{name: "different case is not admin", email: "Admin@astroguru.lk", want: false},
		{name: "uppercase domain is not admin", email: "admin@ASTROGURU.LK", want: false},
		{name: "non-matching email", email: "user@astroguru.lk", want: false},
		{name: "empty email", email: "", want: false},
		{name: "whitespace padded is not admin", email: " admin@astroguru.lk", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.IsAdmin(tt.email))
		})
	}
}

func TestAdminPolicyMultipleAddresses(t *testing.T) {
	policy := NewAdminPolicy([]string{"one@example.com", "two@example.com"})

	assert.True(t, policy.IsAdmin("one@example.com"))
	assert.True(t, policy.IsAdmin("two@example.com"))
	assert.False(t, policy.IsAdmin("three@example.com"))
}

func TestAdminPolicyEmptyConfiguration(t *testing.T) {
	policy := NewAdminPolicy(nil)

	assert.False(t, policy.IsAdmin("anyone@example.com"))
	assert.False(t, policy.IsAdmin(""))
}
