package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-cols/internal/config"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_RequiresVersion(t *testing.T) {
	for _, version := range []string{"", "   "} {
		svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())

		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	}
}

func TestGetAppVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: " v1.2.3-beta+build.42 "}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}
