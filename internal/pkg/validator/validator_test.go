package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ahmad.abdullah@sabah.gov.my",
		"crystal_wong+test@jpkn.sabah.gov.my",
		"a@b.co",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{"", "plainaddress", "@sabah.gov.my", "a@b", "a b@c.com"}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("SG000001"))
	assert.True(t, IsValidEmployeeCode("sg123456"))
	assert.False(t, IsValidEmployeeCode("SG00001"))
	assert.False(t, IsValidEmployeeCode("SG0000012"))
	assert.False(t, IsValidEmployeeCode("SX000001"))
	assert.False(t, IsValidEmployeeCode("000001"))
	assert.False(t, IsValidEmployeeCode(" SG000001"))
}

func TestIsValidDeptCode(t *testing.T) {
	assert.True(t, IsValidDeptCode("11D"))
	assert.True(t, IsValidDeptCode("33J"))
	assert.True(t, IsValidDeptCode("11D-1"))
	assert.True(t, IsValidDeptCode("280b"))
	assert.False(t, IsValidDeptCode("D11"))
	assert.False(t, IsValidDeptCode("11"))
	assert.False(t, IsValidDeptCode("11D-"))
	assert.False(t, IsValidDeptCode(""))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-12")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("12/03/2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("0123456789"))
	assert.True(t, IsValidPhoneNumber("012-345 6789"))
	assert.True(t, IsValidPhoneNumber("+60123456789"))
	assert.False(t, IsValidPhoneNumber("03123456"))
	assert.False(t, IsValidPhoneNumber("abc1234567"))
	assert.False(t, IsValidPhoneNumber(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "email", Message: "is invalid"},
	}
	assert.Equal(t, "name: is required; email: is invalid", errs.Error())
	assert.Equal(t, map[string]string{
		"name":  "is required",
		"email": "is invalid",
	}, errs.ToMap())
}
