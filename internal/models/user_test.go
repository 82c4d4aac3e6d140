package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGender_IsValid(t *testing.T) {
	assert.True(t, GenderMale.IsValid())
	assert.True(t, GenderFemale.IsValid())
	assert.True(t, GenderOther.IsValid())
	assert.False(t, Gender("X").IsValid())
	assert.False(t, Gender("").IsValid())
}

func TestUser_WithoutPassword(t *testing.T) {
	u := User{ID: "user_1", Name: "Ana", PasswordHash: "$argon2id$..."}

	public := u.WithoutPassword()

	assert.Empty(t, public.PasswordHash)
	assert.Equal(t, "$argon2id$...", u.PasswordHash, "original must not be mutated")

	data, err := json.Marshal(public)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "passwordHash")
}

func TestAddress_ComplementOmittedWhenEmpty(t *testing.T) {
	data, err := json.Marshal(Address{CEP: "89201000", City: "Joinville"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "complement")
}
