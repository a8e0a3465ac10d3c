package tooldoc

import (
	"context"
	"encoding/json"
	"time"
)

// Tool is the contract for an LLM-callable instrument built from a Go
// function and its doc text. It is provider-agnostic (no knowledge of
// OpenAI, Anthropic, etc.). A Tool is immutable after construction and safe
// for concurrent use; concurrency safety of the underlying function itself
// is the function author's responsibility.
type Tool interface {
	Name() string
	Description() string
	// Schema returns the structured parameter schema in declaration order.
	Schema() Schema
	// Parameters returns a valid JSON Schema as map (compatible with LLM tool definitions).
	Parameters() map[string]any
	// Execute decodes argsJSON into the argument struct, calls the underlying
	// function, and returns its marshaled result. No validation is performed
	// beyond encoding/json coercion; errors from the function propagate unchanged.
	Execute(ctx context.Context, argsJSON []byte) ([]byte, error)
}

// ToolMetadata is implemented by tools created with New and provides optional
// per-tool settings. Registry uses Timeout() to override its default
// execution timeout when set; tags, version, and the dangerous flag are for
// orchestration or discovery.
type ToolMetadata interface {
	Timeout() time.Duration
	Tags() []string
	Version() string
	IsDangerous() bool
}

// ParameterSpec describes one parameter of a tool.
type ParameterSpec struct {
	Name        string
	Type        TypeDescriptor
	Required    bool
	Default     any // nil unless HasDefault
	HasDefault  bool
	Description string
}

// Schema is the structured description of a tool's callable interface.
// Parameters are in argument-struct declaration order; names are unique.
type Schema struct {
	Name        string
	Description string
	Parameters  []ParameterSpec
}

// ToolCall is a single execution request (as produced by the LLM).
type ToolCall struct {
	ID       string
	ToolName string
	Args     json.RawMessage // JSON payload of arguments
}

// ToolResult is the outcome of one ToolCall. Exactly one of Result and Error
// is meaningful; Error holds the underlying function's failure unchanged.
type ToolResult struct {
	CallID   string
	ToolName string
	Result   json.RawMessage
	Error    error
}
