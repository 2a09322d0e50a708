package errors

import "fmt"

// Category represents the class of diagnostic, per spec §7.
type Category string

const (
	// CategoryContract covers hooks called outside render, out-of-order
	// hook calls, and portals given a non-element container.
	CategoryContract Category = "contract"
	// CategoryStructural covers unknown vnode types and circular context
	// mappings.
	CategoryStructural Category = "structural"
	// CategoryUserCode is recorded for completeness only: the engine
	// never constructs a LumenError in this category because user code
	// faults are never caught, only propagated (spec §7).
	CategoryUserCode Category = "user_code"
)

// LumenError is a structured diagnostic with a stable code, a category,
// and enough context to explain itself in a log line or a formatted block.
// It is never returned from an engine operation — spec §7 requires
// contract violations and structural anomalies to be logged, not
// propagated as errors.
type LumenError struct {
	// Code is a unique diagnostic identifier (e.g. "E101").
	Code string

	// Category is the diagnostic class.
	Category Category

	// Message is a short description.
	Message string

	// Detail is a longer explanation.
	Detail string

	// Suggestion is a hint on how to avoid the diagnostic.
	Suggestion string

	// Component names the component instance involved, if any.
	Component string

	// VNodeType names the vnode type involved, if any (a tag, a function
	// name, or one of "text"/"portal"/"fragment").
	VNodeType string
}

// Error implements the error interface so a LumenError can be passed to
// anything that accepts one (formatting, %w, etc.) even though the engine
// itself never returns one.
func (e *LumenError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// WithComponent records which component instance the diagnostic concerns.
func (e *LumenError) WithComponent(name string) *LumenError {
	e.Component = name
	return e
}

// WithVNodeType records which vnode type the diagnostic concerns.
func (e *LumenError) WithVNodeType(t string) *LumenError {
	e.VNodeType = t
	return e
}

// WithDetail overrides the registered detail text.
func (e *LumenError) WithDetail(d string) *LumenError {
	e.Detail = d
	return e
}

// WithSuggestion attaches a fix suggestion.
func (e *LumenError) WithSuggestion(s string) *LumenError {
	e.Suggestion = s
	return e
}

// New creates a LumenError from a registered diagnostic code.
func New(code string) *LumenError {
	template, ok := registry[code]
	if !ok {
		return &LumenError{Code: code, Category: CategoryStructural, Message: "unregistered diagnostic code"}
	}
	return &LumenError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a LumenError with a formatted message and no registered code.
func Newf(category Category, format string, args ...any) *LumenError {
	return &LumenError{Category: category, Message: fmt.Sprintf(format, args...)}
}
