// Package audit defines the audit trail contract for document mutations.
package audit

import (
	"context"
	"encoding/json"

	"capplan/internal/core/id"
)

// Action represents the type of audited operation.
type Action string

const (
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionValidate Action = "validate"
)

// Logger records a snapshot of an entity after a mutation.
// Calls happen inside the mutation's transaction.
type Logger interface {
	LogChange(ctx context.Context, entityType string, entityID id.ID, action Action, changes map[string]any) error
}

// Nop discards audit records.
type Nop struct{}

// LogChange implements Logger.
func (Nop) LogChange(context.Context, string, id.ID, Action, map[string]any) error { return nil }

// Snapshot converts an entity to its JSON field map for the audit trail.
func Snapshot(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	out := make(map[string]any)
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{"error": err.Error()}
	}
	return out
}
