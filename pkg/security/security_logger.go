package security

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventLoginFailed        EventType = "login_failed"
	EventLoginSuccess       EventType = "login_success"
	EventRegisterFailed     EventType = "register_failed"
	EventPasswordChanged    EventType = "password_changed"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventInvalidToken       EventType = "invalid_token"
)

// Event represents a security-related event to be logged
type Event struct {
	Event        EventType
	SubjectType  string // "email", "ip", "user_id"
	SubjectValue string // masked/hashed before emission
	IP           string
	UserAgent    string
	RequestID    string
}

// Logger provides structured logging for security events
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewLogger creates a security event logger writing JSON to stdout.
func NewLogger(serviceName string) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		zapcore.InfoLevel,
	)

	env := os.Getenv("GIN_MODE")
	if env == "" {
		env = "debug"
	}

	return &Logger{
		zapLogger:   zap.New(core),
		serviceName: serviceName,
		environment: env,
	}
}

// LogEvent emits a structured security event. Subject values that look
// like emails are masked, anything else is hashed, so PII never reaches
// the log stream.
func (l *Logger) LogEvent(e Event) {
	if l == nil || l.zapLogger == nil {
		return
	}

	subject := e.SubjectValue
	if e.SubjectType == "email" {
		subject = maskEmail(subject)
	} else if subject != "" {
		subject = hashValue(subject)
	}

	l.zapLogger.Info("security_event",
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(e.Event)),
		zap.String("subject_type", e.SubjectType),
		zap.String("subject_value", subject),
		zap.String("ip", e.IP),
		zap.String("user_agent", e.UserAgent),
		zap.String("request_id", e.RequestID),
		zap.Time("at", time.Now()),
	)
}

// maskEmail keeps the first character and the domain: a***@example.com
func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

func hashValue(v string) string {
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:8])
}
