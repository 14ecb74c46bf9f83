package audit

import (
	"context"

	"github.com/rs/zerolog"

	appctx "github.com/varis/taskboard/internal/pkg/context"
)

// Logger provides structured audit logging for auth and task business events.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

// UserRegistered logs a successful registration.
func (l *Logger) UserRegistered(ctx context.Context, userID, email, role string) {
	l.log.Info().
		Str("action", "user_registered").
		Str("user_id", userID).
		Str("email", maskEmail(email)).
		Str("role", role).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("User registered")
}

// LoginSuccess logs a successful login.
func (l *Logger) LoginSuccess(ctx context.Context, userID, email string) {
	l.log.Info().
		Str("action", "login_success").
		Str("user_id", userID).
		Str("email", maskEmail(email)).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("User logged in successfully")
}

// LoginFailed logs a failed login attempt.
func (l *Logger) LoginFailed(ctx context.Context, email, reason string) {
	l.log.Warn().
		Str("action", "login_failed").
		Str("email", maskEmail(email)).
		Str("reason", reason).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Login attempt failed")
}

// PasswordChanged logs a password update.
func (l *Logger) PasswordChanged(ctx context.Context, userID string) {
	l.log.Info().
		Str("action", "password_changed").
		Str("user_id", userID).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Password updated")
}

// TaskCreated logs task creation.
func (l *Logger) TaskCreated(ctx context.Context, taskID, userID string) {
	l.log.Info().
		Str("action", "task_created").
		Str("task_id", taskID).
		Str("user_id", userID).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Task created")
}

// TaskUpdated logs task mutation.
func (l *Logger) TaskUpdated(ctx context.Context, taskID, userID, status string) {
	l.log.Info().
		Str("action", "task_updated").
		Str("task_id", taskID).
		Str("user_id", userID).
		Str("status", status).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Task updated")
}

// TaskDeleted logs task deletion.
func (l *Logger) TaskDeleted(ctx context.Context, taskID, userID string) {
	l.log.Info().
		Str("action", "task_deleted").
		Str("task_id", taskID).
		Str("user_id", userID).
		Str("request_id", appctx.GetRequestID(ctx)).
		Msg("Task deleted")
}

// maskEmail partially masks email for privacy in logs.
func maskEmail(email string) string {
	if len(email) < 5 {
		return "***"
	}
	at := 0
	for i, c := range email {
		if c == '@' {
			at = i
			break
		}
	}
	if at < 2 {
		return email[:1] + "***" + email[at:]
	}
	return email[:2] + "***" + email[at:]
}
