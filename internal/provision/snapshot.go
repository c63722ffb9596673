package provision

// Section names one of the three independently tracked sub-entities.
type Section string

const (
	SectionUser       Section = "user"
	SectionLogin      Section = "login"
	SectionCredential Section = "credential"
)

// sections in the order saveChanges applies updates.
var sections = []Section{SectionUser, SectionLogin, SectionCredential}

// Fields holds the primitive leaf values of one section. Values are strings
// or int64 ids; the diff tracker is defined only over such primitives.
type Fields map[string]any

// Snapshot is the tri-section record captured after credential creation and
// advanced on every successful save. It is the baseline all edits are diffed
// against.
type Snapshot struct {
	User       Fields
	Login      Fields
	Credential Fields
}

// ChangeSet maps a section to the fields whose edited value differs from the
// baseline. A field reverted to its original value is absent.
type ChangeSet map[Section]Fields

func (f Fields) clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

func (s *Snapshot) clone() *Snapshot {
	if s == nil {
		return nil
	}
	return &Snapshot{
		User:       s.User.clone(),
		Login:      s.Login.clone(),
		Credential: s.Credential.clone(),
	}
}

func (s *Snapshot) section(name Section) Fields {
	switch name {
	case SectionUser:
		return s.User
	case SectionLogin:
		return s.Login
	case SectionCredential:
		return s.Credential
	}
	return nil
}

func (s *Snapshot) setSection(name Section, f Fields) {
	switch name {
	case SectionUser:
		s.User = f
	case SectionLogin:
		s.Login = f
	case SectionCredential:
		s.Credential = f
	}
}

func (c ChangeSet) clone() ChangeSet {
	out := make(ChangeSet, len(c))
	for section, fields := range c {
		out[section] = fields.clone()
	}
	return out
}

func emptyChangeSet() ChangeSet {
	return ChangeSet{
		SectionUser:       Fields{},
		SectionLogin:      Fields{},
		SectionCredential: Fields{},
	}
}
