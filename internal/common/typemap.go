package common

import "errors"

// ErrSkip signals that a declaration's shape is not supported and the unit of
// generation carrying it must be omitted from the output. Callers absorb it;
// it never surfaces as a failure of the run.
var ErrSkip = errors.New("unsupported declaration shape")

// TypeMap resolves C primitive spellings to Rust type tokens. The table is
// fixed at construction; lookup is by exact string match, except for
// string-like spellings, which win over table absence.
type TypeMap struct {
	rust map[string]string
}

// NewTypeMap builds the table of supported primitives, merged with any extra
// exact-spelling entries from the configuration.
func NewTypeMap(extra map[string]string) *TypeMap {
	rust := map[string]string{
		"uint16_t":     "u16",
		"int32_t":      "i32",
		"uint8_t":      "u8",
		"bool":         "bool",
		"_Bool":        "bool",
		"const char *": "&str",
	}
	for spelling, token := range extra {
		rust[spelling] = token
	}
	return &TypeMap{rust: rust}
}

// Rust returns the Rust token for t. Anything ending in "char *" maps to &str
// whether or not the exact spelling is a table key; a spelling the table does
// not know fails with ErrSkip.
func (tm *TypeMap) Rust(t Type) (string, error) {
	if t.IsStr() {
		return "&str", nil
	}
	token, ok := tm.rust[t.Spelling]
	if !ok {
		return "", ErrSkip
	}
	return token, nil
}
