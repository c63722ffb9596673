package provision

// recomputeField updates the change set for a single edited field.
//
// The new value is compared to the baseline with strict equality (the
// tracker is defined only over primitive leaf values). When the values
// match, the field is removed from the change set: an edit back to the
// original value must not report the field as changed. Fields that were
// never edited are never inspected and never appear in the change set.
func recomputeField(changes ChangeSet, section Section, field string, newValue any, original Fields) {
	fields, ok := changes[section]
	if !ok {
		fields = Fields{}
		changes[section] = fields
	}

	if newValue == original[field] {
		delete(fields, field)
		return
	}
	fields[field] = newValue
}
