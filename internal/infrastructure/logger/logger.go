package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	userIDKey
)

// ContextWithRequestID returns ctx carrying the request id picked up by WithContext
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ContextWithUserID returns ctx carrying the authenticated player id
func ContextWithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// RequestIDFrom returns the request id stored in ctx, "" if none
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// UserIDFrom returns the player id stored in ctx, 0 if none
func UserIDFrom(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// Logger wraps zap with the fields this service attaches to every line
type Logger struct {
	zap *zap.Logger
}

// NewLogger builds a JSON logger for production and a console logger otherwise.
// An unknown level falls back to info.
func NewLogger(environment, level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewDevelopmentConfig()
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder

	z, err := cfg.Build(zap.AddCallerSkip(1), zap.Fields(zap.String("service", "pokerbankroll")))
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return &Logger{zap: z}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// NewObserved returns a logger recording entries at or above level, for tests
func NewObserved(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &Logger{zap: zap.New(core)}, logs
}

// WithContext adds the request id and player id found in ctx
func (l *Logger) WithContext(ctx context.Context) *Logger {
	var fields []zap.Field
	if id := RequestIDFrom(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if id := UserIDFrom(ctx); id != 0 {
		fields = append(fields, zap.Int64("user_id", id))
	}
	if len(fields) == 0 {
		return l
	}
	return &Logger{zap: l.zap.With(fields...)}
}

// Access describes one served HTTP request
type Access struct {
	Method   string
	Path     string
	ClientIP string
	Status   int
	Latency  time.Duration
	Bytes    int
}

// LogAccess writes the access line of a request; 5xx are logged as errors
func (l *Logger) LogAccess(ctx context.Context, a Access) {
	log := l.WithContext(ctx).zap.With(
		zap.String("method", a.Method),
		zap.String("path", a.Path),
		zap.String("client_ip", a.ClientIP),
		zap.Int("status", a.Status),
		zap.Duration("latency", a.Latency),
		zap.Int("bytes", a.Bytes),
	)
	if a.Status >= 500 {
		log.Error("HTTP request failed")
		return
	}
	log.Info("HTTP request processed")
}

// WithField adds a single field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{zap: l.zap.With(zap.Any(key, value))}
}

func (l *Logger) Info(msg string, fields ...zap.Field)  { l.zap.Info(msg, fields...) }
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...zap.Field)  { l.zap.Warn(msg, fields...) }
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
