package userservice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftwerk/studiohub/internal/common"
)

func TestValidateUsername(t *testing.T) {
	testCases := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "valid", username: "admin42", valid: true},
		{name: "empty", username: "", valid: false},
		{name: "too short", username: "ab", valid: false},
		{name: "symbols rejected", username: "admin!", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateUsername(v, tc.username)
			assert.Equal(t, tc.valid, v.Valid())
		})
	}
}

func TestValidatePassword(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid", password: "Str0ngPass!", valid: true},
		{name: "empty", password: "", valid: false},
		{name: "no uppercase", password: "str0ngpass!", valid: false},
		{name: "no number", password: "StrongPass!", valid: false},
		{name: "no symbol", password: "Str0ngPass1", valid: false},
		{name: "too short", password: "S0rt!", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tc.password)
			assert.Equal(t, tc.valid, v.Valid())
		})
	}
}

func TestValidateToken(t *testing.T) {
	v := common.NewValidator()
	ValidateToken(v, "")
	assert.False(t, v.Valid())

	v = common.NewValidator()
	ValidateToken(v, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	assert.True(t, v.Valid())
}
