package config

import (
	"io"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

// ConfigureLogging points the shared logger at the configured sink: the log
// file when logging is enabled, io.Discard otherwise.
func ConfigureLogging(cfg *Config) error {
	log := GetLogrusInstance()

	if !cfg.LoggingEnabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		log.SetOutput(f)
	}
	return nil
}

// LogRequest records the outcome of a handler call.
func LogRequest(statusCode int, handler string) {
	GetLogrusInstance().WithFields(logrus.Fields{
		"handler": handler,
		"status":  statusCode,
	}).Info(http.StatusText(statusCode))
}
