package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/SISDRUG/bankoffice/internal/provision"
)

// Provision drives one provisioning session: three creation steps, then the
// confirmation loop. Leaving the wizard for any reason abandons the session
// state (the workflow is reset on the next entry).
func (a *App) Provision(ctx context.Context) {
	if !a.isLoggedIn() {
		printlnFn("Log in first")
		return
	}

	// Re-entering the wizard always starts a fresh session.
	a.workflow.Reset()
	if err := a.workflow.Begin(ctx); err != nil {
		log.Printf("error: %v", err)
		return
	}

	if !a.provisionUserStep(ctx) {
		return
	}
	if !a.provisionLoginStep(ctx) {
		return
	}
	if !a.provisionCredentialStep(ctx) {
		return
	}
	a.confirmLoop(ctx)
}

// provisionUserStep collects the user form until it validates and the remote
// creation succeeds. Returns false when the operator aborts.
func (a *App) provisionUserStep(ctx context.Context) bool {
	printlnFn("Step 1/4 - create user (empty first name aborts)")
	for {
		form, ok := a.readUserForm()
		if !ok {
			return false
		}

		err := a.workflow.SubmitUser(ctx, form)
		if err == nil {
			printlnFn("User created. Now create the login.")
			return true
		}
		a.reportWorkflowError(err)
		if isFatal(err) {
			return false
		}
	}
}

func (a *App) readUserForm() (provision.UserForm, bool) {
	var form provision.UserForm
	var err error

	if form.FirstName, err = getSimpleText(a.reader, "First name", osStdout); err != nil {
		return form, false
	}
	if strings.TrimSpace(form.FirstName) == "" {
		return form, false
	}
	if form.LastName, err = getSimpleText(a.reader, "Last name", osStdout); err != nil {
		return form, false
	}
	if form.DateOfBirth, err = getSimpleText(a.reader, "Date of birth (YYYY-MM-DD)", osStdout); err != nil {
		return form, false
	}
	if form.Phone, err = getSimpleText(a.reader, "Phone", osStdout); err != nil {
		return form, false
	}
	if form.Address, err = getSimpleText(a.reader, "Address", osStdout); err != nil {
		return form, false
	}
	return form, true
}

func (a *App) provisionLoginStep(ctx context.Context) bool {
	printlnFn("Step 2/4 - create login (empty email aborts)")
	for {
		email, err := getSimpleText(a.reader, "Email", osStdout)
		if err != nil || strings.TrimSpace(email) == "" {
			return false
		}
		password, err := getPassword(osStdout)
		if err != nil {
			return false
		}

		err = a.workflow.SubmitLogin(ctx, provision.LoginForm{Email: email, Password: string(password)})
		if err == nil {
			printlnFn("Login created. Now select a role.")
			return true
		}
		a.reportWorkflowError(err)
		if isFatal(err) {
			return false
		}
	}
}

func (a *App) provisionCredentialStep(ctx context.Context) bool {
	printlnFn("Step 3/4 - select role")
	roles := a.workflow.Roles()
	for _, role := range roles {
		marker := " "
		if role.ID == a.workflow.DefaultRoleID() {
			marker = "*"
		}
		fmt.Printf("  %s %d: %s\n", marker, role.ID, role.Name)
	}

	for {
		text, err := getSimpleText(a.reader, "Role id (empty for default)", osStdout)
		if err != nil {
			return false
		}

		var roleID int64
		if text != "" {
			roleID, err = strconv.ParseInt(text, 10, 64)
			if err != nil {
				printlnFn("Not a role id:", text)
				continue
			}
		}

		err = a.workflow.SubmitCredential(ctx, roleID)
		if err == nil {
			printlnFn("Credential created.")
			return true
		}
		a.reportWorkflowError(err)
		if isFatal(err) {
			return false
		}
	}
}

// confirmLoop is step 4: review, edit, save, finish or cancel.
func (a *App) confirmLoop(ctx context.Context) {
	printlnFn("Step 4/4 - review (commands: show, edit, save, finish, cancel)")
	a.printSnapshot()

	for {
		text, err := getSimpleText(a.reader, "confirm", osStdout)
		if err != nil {
			return
		}
		parts := strings.Fields(text)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "show":
			a.printSnapshot()
		case "edit":
			a.editField(parts[1:])
		case "save":
			if err := a.workflow.SaveChanges(ctx); err != nil {
				a.reportWorkflowError(err)
			} else {
				printlnFn("Changes saved")
			}
		case "finish":
			if err := a.workflow.Finish(); err != nil {
				a.reportWorkflowError(err)
			} else {
				printlnFn("Session finished")
			}
			return
		case "cancel":
			if err := a.workflow.Cancel(ctx); err != nil {
				a.reportWorkflowError(err)
			} else {
				printlnFn("Session rolled back")
			}
			return
		case "help":
			printlnFn("Commands: show | edit <section> <field> <value...> | save | finish | cancel")
		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}

// editField handles "edit <section> <field> <value...>". The roleId field is
// parsed as a number; everything else is passed through as text.
func (a *App) editField(args []string) {
	if len(args) < 3 {
		printlnFn("Usage: edit <section> <field> <value...>")
		return
	}
	section := provision.Section(args[0])
	field := args[1]
	text := strings.Join(args[2:], " ")

	var value any = text
	if field == "roleId" {
		id, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			printlnFn("Not a role id:", text)
			return
		}
		value = id
	}

	if err := a.workflow.EditField(section, field, value); err != nil {
		a.reportWorkflowError(err)
		return
	}
	a.printChanges()
}

func (a *App) printSnapshot() {
	edited := a.workflow.Edited()
	if edited == nil {
		printlnFn("No session data")
		return
	}
	printSection("user", edited.User)
	printSection("login", edited.Login)
	printSection("credential", edited.Credential)
	a.printChanges()
}

func (a *App) printChanges() {
	changes := a.workflow.Changes()
	pending := 0
	for _, fields := range changes {
		pending += len(fields)
	}
	if pending == 0 {
		printlnFn("No pending changes")
		return
	}
	for _, section := range []provision.Section{provision.SectionUser, provision.SectionLogin, provision.SectionCredential} {
		for field, value := range changes[section] {
			fmt.Printf("  changed %s.%s = %v\n", section, field, value)
		}
	}
}

func printSection(name string, fields provision.Fields) {
	fmt.Printf("[%s]\n", name)
	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)
	for _, field := range names {
		if field == "password" {
			continue
		}
		fmt.Printf("  %s: %v\n", field, fields[field])
	}
}

// reportWorkflowError prints one human-readable message per failure.
func (a *App) reportWorkflowError(err error) {
	var validation *provision.ValidationError
	if errors.As(err, &validation) {
		for field, msg := range validation.Fields {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return
	}
	log.Printf("error: %v", err)
}

// isFatal reports whether the error ends the current step loop. Validation
// and remote failures keep the operator on the step so the form can be
// corrected or the call retried; precondition and state errors mean the
// session is unusable and the wizard exits.
func isFatal(err error) bool {
	var precondition *provision.PreconditionError
	if errors.As(err, &precondition) {
		return true
	}
	var validation *provision.ValidationError
	var remote *provision.RemoteStepError
	return !errors.As(err, &validation) && !errors.As(err, &remote)
}
