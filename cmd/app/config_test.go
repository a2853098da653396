package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("../../.test.env")
	assert.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Port)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "owner@studio.example", cfg.Mail.OwnerEmail)
	assert.Equal(t, "studio-test", cfg.Media.UploadPreset)
	assert.Len(t, cfg.CryptoKey, 64)
	assert.False(t, cfg.Limiter.Enabled)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig("does-not-exist.env")
	assert.Error(t, err)
}
