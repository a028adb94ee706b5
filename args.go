// File: paramstore/args.go
package paramstore

import (
	"fmt"
	"sort"
	"strings"
)

// Args maps command-line flag names to their optional string values. A token
// starting with a dash opens a flag (leading dashes are stripped); the
// following token becomes its value unless it opens the next flag, in which
// case the value is the empty string.
type Args struct {
	values map[string]string
	help   map[string][2]string
}

// ParseArgs splits argv, typically os.Args[1:], into flag/value pairs.
// Tokens that neither open a flag nor follow one are skipped.
func ParseArgs(argv []string) *Args {
	a := &Args{
		values: make(map[string]string),
		help:   make(map[string][2]string),
	}
	i := 0
	for i < len(argv) {
		tok := argv[i]
		if !strings.HasPrefix(tok, "-") {
			i++
			continue
		}
		key := strings.TrimLeft(tok, "-")
		if key == "" {
			i++
			continue
		}
		if i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "-") {
			a.values[key] = argv[i+1]
			i += 2
		} else {
			a.values[key] = ""
			i++
		}
	}
	return a
}

// Contains reports whether the flag was given.
func (a *Args) Contains(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Value returns the string value of the flag, failing with KeyNotFoundError
// when the flag was not given. A flag given without a value yields "".
func (a *Args) Value(key string) (string, error) {
	v, ok := a.values[key]
	if !ok {
		return "", &KeyNotFoundError{Position: 0, Key: key}
	}
	return v, nil
}

// Flags returns the given flag names, sorted.
func (a *Args) Flags() []string {
	flags := make([]string, 0, len(a.values))
	for key := range a.values {
		flags = append(flags, key)
	}
	sort.Strings(flags)
	return flags
}

// Describe attaches a display name and description to a flag for Usage.
func (a *Args) Describe(key, name, description string) {
	a.help[key] = [2]string{name, description}
}

// Usage renders the described flags as help text, one per line, sorted by
// flag name.
func (a *Args) Usage() string {
	keys := make([]string, 0, len(a.help))
	for key := range a.help {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		entry := a.help[key]
		fmt.Fprintf(&b, "--%s %s\n    %s\n", key, entry[0], entry[1])
	}
	return b.String()
}
