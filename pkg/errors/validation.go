package errors

import "unicode"

// ValidateName validates a variable name used as a node or grid label.
// Labels flow into serialized output and lookup tables, so the rules
// are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidLabel, "label too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains control characters")
		}
	}

	return nil
}

// ValidateNames validates a full label vector and rejects duplicates.
// Grid row and column names must be unique because they key the
// position lookup tables built by the layout engine.
func ValidateNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if err := ValidateName(name); err != nil {
			return err
		}
		if _, dup := seen[name]; dup {
			return New(ErrCodeInvalidLabel, "duplicate label: %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
