package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which stage of the toolchain produced the error
type Phase string

const (
	PhaseParse    Phase = "parse"    // contract source parsing
	PhaseResolve  Phase = "resolve"  // declared type -> primitive type
	PhaseGenerate Phase = "generate" // action/interface expansion
	PhaseExtract  Phase = "extract"  // static ABI extraction
	PhaseCatalog  Phase = "catalog"  // host import registration
	PhaseBuild    Phase = "build"    // compiler orchestration
	PhaseInspect  Phase = "inspect"  // compiled artifact checks
	PhaseDeploy   Phase = "deploy"   // transaction submission
	PhaseConfig   Phase = "config"   // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindUnknownType  Kind = "unknown_type"
	KindMalformed    Kind = "malformed"
	KindDuplicate    Kind = "duplicate"
	KindUnsupported  Kind = "unsupported"
	KindMismatch     Kind = "mismatch"
	KindTransport    Kind = "transport"
	KindInvalidUTF8  Kind = "invalid_utf8"
	KindNotFound     Kind = "not_found"
	KindInvalidInput Kind = "invalid_input"
	KindIO           Kind = "io"
	KindExternal     Kind = "external"
)

// Error is the structured error type used throughout the toolkit
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Pos    string // file:line:col of the offending declaration
	Type   string // declared type token, when relevant
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Pos != "" {
		b.WriteString(e.Pos)
		b.WriteString(": ")
	}

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the declaration path (e.g. action, parameter)
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Pos sets the source position
func (b *Builder) Pos(pos string) *Builder {
	b.err.Pos = pos
	return b
}

// Type sets the declared type token
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnknownType reports a declared type outside the primitive set
func UnknownType(phase Phase, path []string, token string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownType,
		Path:   path,
		Type:   token,
		Detail: "not one of Integer, Boolean, Binary, String, Payment",
	}
}

// Malformed reports a declaration the generator cannot expand
func Malformed(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformed,
		Path:   path,
		Detail: detail,
	}
}

// Duplicate reports a name declared twice
func Duplicate(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicate,
		Path:   []string{name},
		Detail: fmt.Sprintf("%s %q declared more than once", what, name),
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, path []string, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Path:   path,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Mismatch reports a signature that differs from the expected one
func Mismatch(phase Phase, path []string, want, got string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMismatch,
		Path:   path,
		Detail: fmt.Sprintf("want %s, got %s", want, got),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// IO wraps a filesystem failure
func IO(phase Phase, path string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIO,
		Detail: path,
		Cause:  cause,
	}
}

// Transport creates a node communication error
func Transport(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseDeploy,
		Kind:   KindTransport,
		Detail: detail,
		Cause:  cause,
	}
}

// External wraps the failure of an external tool (compiler, wabt)
func External(phase Phase, tool string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindExternal,
		Detail: tool,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Problem is a single finding of a multi-finding check
type Problem struct {
	Kind   Kind
	Name   string
	Detail string
}

// ProblemsError aggregates findings that are reported together
type ProblemsError struct {
	Phase    Phase
	Problems []Problem
}

func (e *ProblemsError) Error() string {
	if len(e.Problems) == 0 {
		return "[" + string(e.Phase) + "] no problems"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %d problem(s):\n", e.Phase, len(e.Problems)))

	// Group by kind for cleaner output
	byKind := make(map[Kind][]Problem)
	var order []Kind
	for _, p := range e.Problems {
		if _, exists := byKind[p.Kind]; !exists {
			order = append(order, p.Kind)
		}
		byKind[p.Kind] = append(byKind[p.Kind], p)
	}

	for _, k := range order {
		b.WriteString("\n  ")
		b.WriteString(string(k))
		b.WriteString(":\n")
		for _, p := range byKind[k] {
			b.WriteString("    - ")
			b.WriteString(p.Name)
			if p.Detail != "" {
				b.WriteString(": ")
				b.WriteString(p.Detail)
			}
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *ProblemsError) Is(target error) bool {
	_, ok := target.(*ProblemsError)
	return ok
}
