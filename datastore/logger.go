/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"encoding/json"
	"log"
)

// Logger receives structured events from store implementations. Trace level
// narrates individual requests, Info reports lifecycle changes and Error
// reports failures.
type Logger interface {
	Trace(message string, ctx map[string]any)
	Info(message string, ctx map[string]any)
	Error(message string, ctx map[string]any)
}

// NewDefaultLogger returns a Logger that prints errors only.
func NewDefaultLogger() Logger {
	return &defaultLogger{}
}

// NewVerboseLogger returns a Logger that prints every event.
func NewVerboseLogger() Logger {
	return &verboseLogger{}
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &nopLogger{}
}

// FuncLogger adapts a single function to the Logger interface.
type FuncLogger func(level, message string, ctx map[string]any)

func (f FuncLogger) Trace(message string, ctx map[string]any) { f("TRACE", message, ctx) }
func (f FuncLogger) Info(message string, ctx map[string]any)  { f("INFO", message, ctx) }
func (f FuncLogger) Error(message string, ctx map[string]any) { f("ERROR", message, ctx) }

type defaultLogger struct{}

func (l *defaultLogger) Trace(message string, ctx map[string]any) {}
func (l *defaultLogger) Info(message string, ctx map[string]any)  {}
func (l *defaultLogger) Error(message string, ctx map[string]any) { logLine("ERROR", message, ctx) }

type verboseLogger struct{}

func (l *verboseLogger) Trace(message string, ctx map[string]any) { logLine("TRACE", message, ctx) }
func (l *verboseLogger) Info(message string, ctx map[string]any)  { logLine("INFO", message, ctx) }
func (l *verboseLogger) Error(message string, ctx map[string]any) { logLine("ERROR", message, ctx) }

type nopLogger struct{}

func (l *nopLogger) Trace(message string, ctx map[string]any) {}
func (l *nopLogger) Info(message string, ctx map[string]any)  {}
func (l *nopLogger) Error(message string, ctx map[string]any) {}

// logLine prints one line with the context rendered as compact JSON.
func logLine(level, message string, ctx map[string]any) {
	if len(ctx) == 0 {
		log.Printf("%s %s", level, message)
		return
	}
	data, err := json.Marshal(ctx)
	if err != nil {
		log.Printf("%s %s (unloggable context: %v)", level, message, err)
		return
	}
	log.Printf("%s %s %s", level, message, data)
}
