package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{name: "debug json", level: "debug", format: "json"},
		{name: "info text", level: "info", format: "text"},
		{name: "invalid level falls back to info", level: "nonsense", format: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			assert.NotNil(t, logger)
		})
	}
}

func TestLogrusAdapterChaining(t *testing.T) {
	base := logrus.New()
	logger := NewLogrusAdapterFromLogger(base)

	withField := logger.WithField(FieldFile, "statement.pdf")
	assert.NotNil(t, withField)
	assert.NotSame(t, logger, withField)

	withFields := logger.WithFields(
		Field{Key: FieldCount, Value: 3},
		Field{Key: FieldOperation, Value: "persist"},
	)
	assert.NotNil(t, withFields)

	withErr := logger.WithError(assert.AnError)
	assert.NotNil(t, withErr)
}

func TestMockLoggerCapture(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("transactions saved", Field{Key: FieldCount, Value: 5})
	mock.Warn("fragment failed", Field{Key: FieldFragment, Value: 2})

	assert.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "transactions saved"))
	assert.True(t, mock.HasEntry("WARN", "fragment failed"))
	assert.False(t, mock.HasEntry("ERROR", "fragment failed"))

	mock.Clear()
	assert.Empty(t, mock.Entries)
}
