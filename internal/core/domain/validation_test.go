package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"ivan@example.com", true},
		{"ivan.petrov@mail.example.org", true},
		{"a_b-c@host.io", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"user@host..com", true}, // the host part is as loose as the original form ever was
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidEmail(tc.email), "email %q", tc.email)
	}
}

func TestValidPhone(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"+79161234567", true},
		{"79161234567", true},
		{"1234567890", true},
		{"123456789012345", true},
		{"123456789", false},        // 9 digits
		{"1234567890123456", false}, // 16 digits
		{"+7 916 123 45 67", false}, // spaces not allowed
		{"phone", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, ValidPhone(tc.phone), "phone %q", tc.phone)
	}
}

func TestClientIsValid(t *testing.T) {
	valid := NewClient(1, "Ivan", "ivan@example.com", "+79161234567")
	assert.True(t, valid.IsValid())

	badEmail := NewClient(2, "Petr", "not-an-email", "+79161234567")
	assert.False(t, badEmail.IsValid())

	badPhone := NewClient(3, "Anna", "anna@example.com", "123")
	assert.False(t, badPhone.IsValid())
}
