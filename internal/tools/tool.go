// Package tools wraps the external data APIs as named, callable tools the
// pipeline invokes per stage. Every tool takes a loose argument map and
// returns its payload as a string (JSON or plain text), mirroring the tool
// servers it replaces.
package tools

import (
	"context"
)

type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of the tool.
	Description() string

	// Call executes the tool with the given arguments.
	Call(ctx context.Context, args map[string]any) (string, error)
}

// stringArg reads a string argument, falling back when absent or mistyped.
func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// intArg reads an integer argument, tolerating float64 from JSON decoding.
func intArg(args map[string]any, key string, fallback int) int {
	switch v := args[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return fallback
}

// stringsArg reads a list-of-strings argument, tolerating []any.
func stringsArg(args map[string]any, key string) []string {
	switch v := args[key].(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	}
	return nil
}
