package capp

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must
// implement. Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	serviceName() string
	logLevel() zapcore.Level
	otelExporter() string
	defaultCharset() string
	requestTimeout() time.Duration
}

// BaseEnvironment contains the environment variables the wiring consumes.
// Embed this in your custom environment struct.
type BaseEnvironment struct {
	ServiceName    string        `env:"CHTTP_SERVICE_NAME,required"`
	LogLevel       zapcore.Level `env:"CHTTP_LOG_LEVEL" envDefault:"info"`
	OtelExporter   string        `env:"CHTTP_OTEL_EXPORTER" envDefault:"stdout"`
	DefaultCharset string        `env:"CHTTP_DEFAULT_CHARSET" envDefault:"utf-8"`
	RequestTimeout time.Duration `env:"CHTTP_REQUEST_TIMEOUT" envDefault:"30s"`
}

func (e BaseEnvironment) serviceName() string {
	return e.ServiceName
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) otelExporter() string {
	return e.OtelExporter
}

func (e BaseEnvironment) defaultCharset() string {
	return e.DefaultCharset
}

func (e BaseEnvironment) requestTimeout() time.Duration {
	return e.RequestTimeout
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}
