package provision

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/SISDRUG/bankoffice/internal/common"
	"github.com/SISDRUG/bankoffice/internal/gateway"
	"github.com/SISDRUG/bankoffice/internal/logging"
)

// State names a workflow step.
type State string

const (
	StateCreatingUser       State = "creating_user"
	StateCreatingLogin      State = "creating_login"
	StateCreatingCredential State = "creating_credential"
	StateConfirming         State = "confirming"
)

// Gateway is the subset of remote operations the workflow drives.
type Gateway interface {
	CreateUser(ctx context.Context, req gateway.CreateUserRequest) (*gateway.User, error)
	CreateLogin(ctx context.Context, req gateway.CreateLoginRequest) (*gateway.LoginDetails, error)
	CreateCredential(ctx context.Context, req gateway.CreateCredentialRequest) (*gateway.Credential, error)
	UpdateUser(ctx context.Context, id int64, req gateway.CreateUserRequest) (*gateway.User, error)
	UpdateLoginDetails(ctx context.Context, id int64, req gateway.UpdateLoginRequest) (*gateway.LoginDetails, error)
	UpdateCredential(ctx context.Context, id int64, req gateway.UpdateCredentialRequest) (*gateway.Credential, error)
	DeleteLogin(ctx context.Context, id int64) error
	ListRoles(ctx context.Context) ([]gateway.Role, error)
}

// UserForm is the operator input for the first step.
type UserForm struct {
	FirstName   string
	LastName    string
	DateOfBirth string
	Phone       string
	Address     string
}

// LoginForm is the operator input for the second step.
type LoginForm struct {
	Email    string
	Password string
}

var dateOfBirthRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Workflow is the provisioning state machine. It is not safe for concurrent
// use; the busy gate rejects re-entrant actions while a gateway call from
// the current step is outstanding.
type Workflow struct {
	gw  Gateway
	log logging.Logger

	state State
	busy  bool

	roles         []gateway.Role
	defaultRoleID int64

	createdUser *gateway.User
	loginID     int64
	loginForm   LoginForm
	userForm    UserForm

	original *Snapshot
	edited   *Snapshot
	changes  ChangeSet

	fieldErrors map[string]string
}

// NewWorkflow constructs a workflow in the initial state. Call Begin to load
// reference data before submitting the first step.
func NewWorkflow(gw Gateway, log logging.Logger) *Workflow {
	return &Workflow{
		gw:    gw,
		log:   log.With("component", "provision"),
		state: StateCreatingUser,
	}
}

// Begin resets the session and fetches the role list. The first fetched role
// becomes the default selection for the credential step.
func (w *Workflow) Begin(ctx context.Context) error {
	if err := w.acquire(); err != nil {
		return err
	}
	defer w.release()

	roles, err := w.gw.ListRoles(ctx)
	if err != nil {
		return &RemoteStepError{Step: "list roles", Err: err}
	}
	if len(roles) == 0 {
		return &PreconditionError{Reason: "no roles available"}
	}

	w.reset()
	w.roles = roles
	w.defaultRoleID = roles[0].ID
	return nil
}

// Reset unconditionally abandons the session and returns to the initial
// state. Any in-progress multi-step session is silently discarded; the
// workflow keeps no persistence across navigation.
func (w *Workflow) Reset() {
	w.reset()
}

func (w *Workflow) reset() {
	w.state = StateCreatingUser
	w.createdUser = nil
	w.loginID = 0
	w.loginForm = LoginForm{}
	w.userForm = UserForm{}
	w.original = nil
	w.edited = nil
	w.changes = nil
	w.fieldErrors = nil
}

func (w *Workflow) acquire() error {
	if w.busy {
		return common.ErrBusy
	}
	w.busy = true
	return nil
}

func (w *Workflow) release() {
	w.busy = false
}

// SubmitUser validates the user form and creates the user on the gateway.
// On success the workflow advances to the login step.
func (w *Workflow) SubmitUser(ctx context.Context, form UserForm) error {
	if err := w.acquire(); err != nil {
		return err
	}
	defer w.release()

	if w.state != StateCreatingUser {
		return common.ErrInvalidState
	}

	errs := map[string]string{}
	if strings.TrimSpace(form.FirstName) == "" {
		errs["firstName"] = "first name is required"
	}
	if strings.TrimSpace(form.LastName) == "" {
		errs["lastName"] = "last name is required"
	}
	if strings.TrimSpace(form.DateOfBirth) == "" {
		errs["dateOfBirth"] = "date of birth is required"
	} else if !dateOfBirthRe.MatchString(form.DateOfBirth) {
		errs["dateOfBirth"] = "invalid date format (YYYY-MM-DD)"
	}
	if strings.TrimSpace(form.Phone) == "" {
		errs["phone"] = "phone is required"
	}
	if strings.TrimSpace(form.Address) == "" {
		errs["address"] = "address is required"
	}
	if len(errs) > 0 {
		w.fieldErrors = errs
		return &ValidationError{Fields: errs}
	}
	w.fieldErrors = nil

	user, err := w.gw.CreateUser(ctx, gateway.CreateUserRequest{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		DateOfBirth: form.DateOfBirth,
		Phone:       form.Phone,
		Address:     form.Address,
	})
	if err != nil {
		return &RemoteStepError{Step: "create user", Err: err}
	}

	w.createdUser = user
	w.userForm = form
	w.state = StateCreatingLogin
	w.log.Info(ctx, "user created", "user_id", user.ID)
	return nil
}

// SubmitLogin validates the login form and creates the login for the user
// created in the previous step. A gateway failure keeps the workflow on this
// step; the already-created user stays live (only an explicit cancel rolls
// the session back).
func (w *Workflow) SubmitLogin(ctx context.Context, form LoginForm) error {
	if err := w.acquire(); err != nil {
		return err
	}
	defer w.release()

	if w.state != StateCreatingLogin {
		return common.ErrInvalidState
	}

	errs := map[string]string{}
	email := strings.TrimSpace(form.Email)
	if email == "" {
		errs["email"] = "email is required"
	} else if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		errs["email"] = "invalid email"
	}
	if strings.TrimSpace(form.Password) == "" {
		errs["password"] = "password is required"
	} else if len(form.Password) < 6 {
		errs["password"] = "minimum 6 characters"
	}
	if len(errs) > 0 {
		w.fieldErrors = errs
		return &ValidationError{Fields: errs}
	}
	w.fieldErrors = nil

	login, err := w.gw.CreateLogin(ctx, gateway.CreateLoginRequest{
		Email:    email,
		Password: form.Password,
		UserID:   w.createdUser.ID,
	})
	if err != nil {
		return &RemoteStepError{Step: "create login", Err: err}
	}

	w.loginID = login.ID
	w.loginForm = LoginForm{Email: email, Password: form.Password}
	w.state = StateCreatingCredential
	w.log.Info(ctx, "login created", "login_id", login.ID, "user_id", w.createdUser.ID)
	return nil
}

// SubmitCredential creates the role credential binding the login to the
// selected role. Passing roleID 0 selects the default (first fetched) role.
// On success the baseline snapshot is captured and the workflow enters the
// confirmation step.
func (w *Workflow) SubmitCredential(ctx context.Context, roleID int64) error {
	if err := w.acquire(); err != nil {
		return err
	}
	defer w.release()

	if w.state != StateCreatingCredential {
		return common.ErrInvalidState
	}

	if roleID == 0 {
		roleID = w.defaultRoleID
	}
	role, ok := w.findRole(roleID)
	if !ok {
		w.fieldErrors = map[string]string{"role": "role is required"}
		return &ValidationError{Fields: w.fieldErrors}
	}
	w.fieldErrors = nil

	cred, err := w.gw.CreateCredential(ctx, gateway.CreateCredentialRequest{
		UserID:         w.createdUser.ID,
		LoginDetailsID: w.loginID,
		RoleID:         role.ID,
	})
	if err != nil {
		return &RemoteStepError{Step: "create credential", Err: err}
	}

	snapshot := &Snapshot{
		User: Fields{
			"id":          w.createdUser.ID,
			"firstName":   w.userForm.FirstName,
			"lastName":    w.userForm.LastName,
			"dateOfBirth": w.userForm.DateOfBirth,
			"phone":       w.userForm.Phone,
			"address":     w.userForm.Address,
		},
		Login: Fields{
			"id":       cred.LoginDetails.ID,
			"email":    cred.LoginDetails.Email,
			"password": w.loginForm.Password,
		},
		Credential: Fields{
			"id":             cred.ID,
			"loginDetailsId": cred.LoginDetails.ID,
			"userId":         w.createdUser.ID,
			"roleId":         role.ID,
			"roleName":       role.Name,
		},
	}

	w.original = snapshot.clone()
	w.edited = snapshot
	w.changes = emptyChangeSet()
	w.state = StateConfirming
	w.log.Info(ctx, "credential created", "credential_id", cred.ID, "role_id", role.ID)
	return nil
}

// EditField updates the live edited copy of one field and recomputes the
// change set for it. No gateway call is made.
func (w *Workflow) EditField(section Section, field string, value any) error {
	if w.state != StateConfirming || w.edited == nil {
		return &PreconditionError{Reason: "no session awaiting confirmation"}
	}

	fields := w.edited.section(section)
	if fields == nil {
		return &PreconditionError{Reason: fmt.Sprintf("unknown section %q", section)}
	}

	fields[field] = value
	recomputeField(w.changes, section, field, value, w.original.section(section))
	return nil
}

// SaveChanges pushes edited sections to the gateway, one update per section
// with any changed field, in the order user, login, credential. Each update
// sends the full edited section payload, not just the delta. After a
// successful section update its baseline advances and its change set is
// cleared, so a failure on a later section leaves only that section's
// changes pending for retry. Saving with an empty change set performs no
// gateway calls.
func (w *Workflow) SaveChanges(ctx context.Context) error {
	if err := w.acquire(); err != nil {
		return err
	}
	defer w.release()

	if w.state != StateConfirming || w.edited == nil {
		return &PreconditionError{Reason: "no session awaiting confirmation"}
	}

	for _, section := range sections {
		if len(w.changes[section]) == 0 {
			continue
		}
		if err := w.saveSection(ctx, section); err != nil {
			return err
		}
		w.original.setSection(section, w.edited.section(section).clone())
		w.changes[section] = Fields{}
	}
	return nil
}

func (w *Workflow) saveSection(ctx context.Context, section Section) error {
	fields := w.edited.section(section)

	id, ok := fields["id"].(int64)
	if !ok || id == 0 {
		return &PreconditionError{Reason: fmt.Sprintf("%s id is missing", section)}
	}

	switch section {
	case SectionUser:
		updated, err := w.gw.UpdateUser(ctx, id, gateway.CreateUserRequest{
			FirstName:   str(fields["firstName"]),
			LastName:    str(fields["lastName"]),
			DateOfBirth: str(fields["dateOfBirth"]),
			Phone:       str(fields["phone"]),
			Address:     str(fields["address"]),
		})
		if err != nil {
			return &RemoteStepError{Step: "update user", Err: err}
		}
		// The server canonicalizes values; fold them back into the edited copy.
		fields["id"] = updated.ID
		fields["firstName"] = updated.FirstName
		fields["lastName"] = updated.LastName
		fields["dateOfBirth"] = updated.DateOfBirth
		fields["phone"] = updated.Phone
		fields["address"] = updated.Address

	case SectionLogin:
		if _, err := w.gw.UpdateLoginDetails(ctx, id, gateway.UpdateLoginRequest{
			Email:    str(fields["email"]),
			Password: str(fields["password"]),
		}); err != nil {
			return &RemoteStepError{Step: "update login", Err: err}
		}

	case SectionCredential:
		loginID, ok := w.edited.Login["id"].(int64)
		if !ok || loginID == 0 {
			return &PreconditionError{Reason: "login id is missing"}
		}
		roleID, ok := fields["roleId"].(int64)
		if !ok || roleID == 0 {
			return &PreconditionError{Reason: "role id is missing"}
		}
		if _, err := w.gw.UpdateCredential(ctx, id, gateway.UpdateCredentialRequest{
			LoginDetailsID: loginID,
			RoleID:         roleID,
		}); err != nil {
			return &RemoteStepError{Step: "update credential", Err: err}
		}
		if role, ok := w.findRole(roleID); ok {
			fields["roleName"] = role.Name
		}
	}

	w.log.Info(ctx, "section saved", "section", string(section))
	return nil
}

// Finish completes the session without further gateway calls and returns the
// workflow to the initial state, ready for a new session.
func (w *Workflow) Finish() error {
	if w.state != StateConfirming {
		return common.ErrInvalidState
	}
	w.reset()
	return nil
}

// Cancel rolls the session back by deleting the created login. Deleting the
// login is the sole deletion entry point: the backend is expected to cascade
// the deletion to the user and the role credential. That cascade is a
// documented contract of the gateway collaborator; the workflow issues
// exactly one best-effort deletion call and does not verify it.
//
// The session state is discarded regardless of the deletion outcome; a
// failed deletion is reported but the workflow is already back in the
// initial state.
func (w *Workflow) Cancel(ctx context.Context) error {
	if err := w.acquire(); err != nil {
		return err
	}
	defer w.release()

	if w.loginID == 0 {
		return &PreconditionError{Reason: "no login id recorded, nothing to roll back"}
	}

	loginID := w.loginID
	err := w.gw.DeleteLogin(ctx, loginID)
	w.reset()

	if err != nil {
		w.log.Warn(ctx, "rollback deletion failed", "login_id", loginID, "error", err)
		return &RemoteStepError{Step: "delete login", Err: err}
	}
	w.log.Info(ctx, "session rolled back", "login_id", loginID)
	return nil
}

func (w *Workflow) findRole(id int64) (gateway.Role, bool) {
	for _, role := range w.roles {
		if role.ID == id {
			return role, true
		}
	}
	return gateway.Role{}, false
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// State returns the current step.
func (w *Workflow) State() State { return w.state }

// Busy reports whether a gateway call from the current step is outstanding.
func (w *Workflow) Busy() bool { return w.busy }

// Roles returns a copy of the fetched role list.
func (w *Workflow) Roles() []gateway.Role {
	return append([]gateway.Role(nil), w.roles...)
}

// DefaultRoleID returns the id of the default (first fetched) role.
func (w *Workflow) DefaultRoleID() int64 { return w.defaultRoleID }

// CreatedUser returns the user created in step 1, or nil.
func (w *Workflow) CreatedUser() *gateway.User {
	if w.createdUser == nil {
		return nil
	}
	u := *w.createdUser
	return &u
}

// Original returns a deep copy of the baseline snapshot, or nil before the
// confirmation step.
func (w *Workflow) Original() *Snapshot { return w.original.clone() }

// Edited returns a deep copy of the live edited state, or nil before the
// confirmation step.
func (w *Workflow) Edited() *Snapshot { return w.edited.clone() }

// Changes returns a copy of the pending change set.
func (w *Workflow) Changes() ChangeSet {
	if w.changes == nil {
		return nil
	}
	return w.changes.clone()
}

// FieldErrors returns the validation-error map produced by the last failed
// submit, or nil.
func (w *Workflow) FieldErrors() map[string]string {
	if w.fieldErrors == nil {
		return nil
	}
	out := make(map[string]string, len(w.fieldErrors))
	for k, v := range w.fieldErrors {
		out[k] = v
	}
	return out
}
