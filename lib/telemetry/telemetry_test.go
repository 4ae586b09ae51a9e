package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEndpointProtocol(t *testing.T) {
	require.Equal(t, "", Endpoint{}.protocol())
	require.Equal(t, "http", Endpoint{Http: "http://localhost:4318"}.protocol())
	require.Equal(t, "grpc", Endpoint{Grpc: "http://localhost:4317", Http: "http://localhost:4318"}.protocol())
}

func TestMetricInterval(t *testing.T) {
	require.Equal(t, 5*time.Second, Config{}.metricInterval())
	require.Equal(t, 30*time.Second, Config{MetricIntervalSeconds: 30}.metricInterval())
}

func TestSetupWithoutEndpoints(t *testing.T) {
	tel, err := Setup(context.Background(), "lapchart-test", Config{})
	require.NoError(t, err)
	require.Nil(t, tel.TracerProvider)
	require.Nil(t, tel.MeterProvider)
	require.NoError(t, tel.Shutdown(context.Background()))
}
