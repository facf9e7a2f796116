package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracing_None(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{Exporter: "none"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_Unknown(t *testing.T) {
	_, err := InitTracing(context.Background(), TracingConfig{Exporter: "zipkin"})
	assert.True(t, errors.Is(err, ErrUnknownExporter))
}

func TestStartSpan_RecordError(t *testing.T) {
	_, span := StartSpan(context.Background(), "aura.test", "op")
	RecordError(span, errors.New("boom"))
	RecordError(span, nil)
	RecordError(nil, errors.New("ignored"))
	span.End()
}

func TestObserveHelpers(t *testing.T) {
	ObserveHTTP("GET", "", 200, time.Millisecond)
	ObserveCatalogQuery(time.Millisecond, 3, nil)
	ObserveCatalogQuery(time.Millisecond, 0, errors.New("x"))
	assert.NotNil(t, MetricsHandler())
}
