package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogrus(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
		L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
	})
}

func TestSetupLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{name: "Deve aplicar nível válido", level: "debug", expected: logrus.DebugLevel},
		{name: "Deve usar info para nível inválido", level: "barulhento", expected: logrus.InfoLevel},
		{name: "Deve usar info sem nível", level: "", expected: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLogrus(t)

			Setup(Options{Level: tt.level})
			assert.Equal(t, tt.expected, logrus.GetLevel())
		})
	}
}

func TestSetupFile(t *testing.T) {
	resetLogrus(t)

	file := filepath.Join(t.TempDir(), "api.log")
	Setup(Options{Level: "info", File: file})

	L.WithField("ad_id", "ad-1").Info("tracking: ad status updated")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), "tracking: ad status updated")
	assert.Contains(t, string(content), "ad-1")
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
