package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	platformobservability "github.com/Apurer/go-gin-shelter-api/internal/platform/observability"
)

func TestDialTemporal_Disabled(t *testing.T) {
	c, err := DialTemporal(Config{TemporalDisabled: true}, platformobservability.Noop())
	require.ErrorIs(t, err, ErrTemporalDisabled)
	require.Nil(t, c)
}
