package provision

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports local, field-scoped validation failures. It is
// produced before any gateway call; a step that fails validation has no side
// effects.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PreconditionError is a fatal precondition failure: an action was attempted
// without a required piece of session state (e.g. a missing entity id).
// The action is aborted and the workflow state is left unchanged.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// RemoteStepError wraps a gateway failure, naming the step or section that
// failed so per-section save failures are reported distinctly.
type RemoteStepError struct {
	Step string
	Err  error
}

func (e *RemoteStepError) Error() string {
	return fmt.Sprintf("%s: %s", e.Step, e.Err)
}

func (e *RemoteStepError) Unwrap() error { return e.Err }
