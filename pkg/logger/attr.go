package logger

import (
	"fmt"
	"log/slog"
)

// Error creates a standard error attribute.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

// UserID creates a user identifier attribute.
func UserID(id any) slog.Attr {
	return slog.String("user_id", fmt.Sprintf("%v", id))
}

// Role creates a role-claim attribute.
func Role(role any) slog.Attr {
	return slog.String("role", fmt.Sprintf("%v", role))
}

// Component identifies the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
