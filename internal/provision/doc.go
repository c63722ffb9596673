// Package provision implements the user provisioning workflow: an ordered
// multi-step state machine that creates a user, a login, and a role
// credential on the admin API, then lets the operator review and edit the
// result before finishing or rolling the session back.
//
// The workflow is the sole owner of its session state (created entity ids,
// the baseline snapshot, and the pending change set). The presentation layer
// reads the exposed view and submits discrete actions; it never mutates
// workflow state directly.
package provision
