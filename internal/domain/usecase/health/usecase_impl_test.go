package health

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-agent/internal/domain/model"
	"weather-agent/pkg/redis"
)

type credential bool

func (c credential) HasCredential() bool { return bool(c) }

func TestCheckHealthWithoutRedis(t *testing.T) {
	resp := NewHealthUseCase(credential(true), "https://api.openweathermap.org", nil).CheckHealth(context.Background())

	assert.Equal(t, model.StatusUp, resp.Status)
	assert.Equal(t, model.StatusUp, resp.Upstream.Status)
	assert.Equal(t, model.StatusUnknown, resp.Redis.Status)
}

func TestCheckHealthMissingCredential(t *testing.T) {
	resp := NewHealthUseCase(credential(false), "https://api.openweathermap.org", nil).CheckHealth(context.Background())

	assert.Equal(t, model.StatusDown, resp.Status)
	assert.Equal(t, "api key missing", resp.Upstream.Details["error"])
}

func TestCheckHealthWithRedis(t *testing.T) {
	server := miniredis.RunT(t)
	port, err := strconv.Atoi(server.Port())
	require.NoError(t, err)
	client, err := redis.NewClient(redis.NewRedisConfig().WithHost(server.Host()).WithPort(port))
	require.NoError(t, err)
	defer client.Close()

	useCase := NewHealthUseCase(credential(true), "https://api.openweathermap.org", client)

	assert.Equal(t, model.StatusUp, useCase.CheckHealth(context.Background()).Status)

	server.Close()

	resp := useCase.CheckHealth(context.Background())
	assert.Equal(t, model.StatusDown, resp.Status)
	assert.Equal(t, model.StatusDown, resp.Redis.Status)
}
