package observability

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

// InitLogger initializes the global zerolog logger. Development gets a
// human-readable console writer at debug level, everything else JSON at info.
func InitLogger(serviceName, env string) {
	initLogger(os.Stdout, serviceName, env)
}

func initLogger(out io.Writer, serviceName, env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	var writer io.Writer = out
	if env == "development" {
		level = zerolog.DebugLevel
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	zerolog.SetGlobalLevel(level)

	fields := zerolog.New(writer).With().Timestamp().Str("service", serviceName)
	if env != "development" {
		fields = fields.Caller()
	}
	log.Logger = fields.Logger()
}

type sessionIDKey struct{}

// ContextWithSessionID tags ctx with the client session id so log lines and
// search events can be tied back to a session
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the id set by ContextWithSessionID, if any
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// LoggerFromContext returns the global logger enriched with the trace and
// session carried by ctx
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	fields := log.With()

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		fields = fields.
			Str("trace_id", sc.TraceID().String()).
			Str("span_id", sc.SpanID().String())
	}
	if id := SessionIDFromContext(ctx); id != "" {
		fields = fields.Str("session_id", id)
	}

	logger := fields.Logger()
	return &logger
}
