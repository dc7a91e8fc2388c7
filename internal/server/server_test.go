package server_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/estate-api/internal/config"
	"github.com/deppfellow/estate-api/internal/server"
)

func TestStartWithoutSetup(t *testing.T) {
	logger := zerolog.Nop()
	s := &server.Server{Config: &config.Config{}, Logger: &logger}

	err := s.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestShutdownWithoutResources(t *testing.T) {
	logger := zerolog.Nop()
	s := &server.Server{Config: &config.Config{}, Logger: &logger}

	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestNewRequiresConfig(t *testing.T) {
	logger := zerolog.Nop()
	_, err := server.New(nil, &logger, nil)
	assert.Error(t, err)
}
