package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields carries structured context for a log line.
type Fields map[string]interface{}

var (
	mu     sync.Mutex
	logger *zap.SugaredLogger
)

// Init configures the process logger. Call it once at startup; packages
// that log before Init get a production-config logger.
func Init(debug bool) {
	mu.Lock()
	defer mu.Unlock()
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	l, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		// zap config is static here; failure means the process cannot log.
		panic(err)
	}
	logger = l.Sugar()
}

func get() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		l, err := zap.NewProduction(zap.AddCallerSkip(2))
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	}
	return logger
}

// Sync flushes buffered log entries; call it on shutdown.
func Sync() {
	_ = get().Sync()
}

func kvPairs(fields Fields) []interface{} {
	kv := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return kv
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	get().Infow(msg, kvPairs(fields)...)
}

// Error logs an error message and includes the error in the fields.
func Error(msg string, err error, fields Fields) {
	if err != nil {
		if fields == nil {
			fields = Fields{}
		}
		fields["error"] = err.Error()
	}
	get().Errorw(msg, kvPairs(fields)...)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	if err != nil {
		if fields == nil {
			fields = Fields{}
		}
		fields["error"] = err.Error()
	}
	get().Errorw(msg, kvPairs(fields)...)
	Sync()
	os.Exit(1)
}
