package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging("debug")
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func TestSetupLogging_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := SetupLogging("loud")
	assert.Equal(t, logrus.InfoLevel, logger.Level)
}

func TestLogData_Log(t *testing.T) {
	logger, buf := bufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("inserted", 3)
	endTimer := logData.AddTiming("fetch")
	endTimer()
	logData.Log().Info("done")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, float64(3), line["inserted"])
	assert.Contains(t, line, "fetch_ms")
}

func TestGetLogData_FromContext(t *testing.T) {
	logger, _ := bufferedLogger()
	logData := NewLogData(logger)

	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
	assert.NotNil(t, GetLogData(context.Background()))
}

func TestLoggingWrapper(t *testing.T) {
	logger, buf := bufferedLogger()

	var seen *LogData
	wrapped := LoggingWrapper("Test", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		seen = GetLogData(req.Context())
		assert.Same(t, logData, seen)
		return errors.New("boom")
	})

	wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, seen)
	assert.Contains(t, buf.String(), "Handler.Test.Error")
}
