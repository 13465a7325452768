package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pricing-api/pkg/logger"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Info().Str("order_id", "abc").Msg("calculated bill")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "la salida en production debe ser JSON")
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "calculated bill", entry["message"])
	assert.Equal(t, "abc", entry["order_id"])
	assert.Contains(t, entry, "time")
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("oculto")
	log.Debug().Msg("oculto")
	assert.Zero(t, buf.Len(), "info y debug no deben escribirse con nivel warn")

	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_DevelopmentConsola(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "development", Level: "debug", Output: &buf})

	log.Debug().Msg("attempting order")
	assert.Contains(t, buf.String(), "attempting order")
	assert.NotContains(t, buf.String(), `"message"`, "development usa salida legible, no JSON")
}

func TestChild_ConservaCampos(t *testing.T) {
	var buf bytes.Buffer
	parent := logger.New(logger.Config{Env: "production", Output: &buf})

	child := logger.Child(parent.With().Str("component", "order").Logger())
	child.Info().Msg("ok")

	assert.Contains(t, buf.String(), `"component":"order"`)
}
