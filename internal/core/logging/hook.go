package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies session_id and route from the event context onto log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if sessionID := GetSessionID(ctx); sessionID != "" {
		e.Str("session_id", sessionID)
	}

	if route := GetRoute(ctx); route != "" {
		e.Str("route", route)
	}
}
