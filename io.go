// File: paramstore/io.go
package paramstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
)

// LoadFile reads a TOML parameter file into the handler. Nested tables are
// flattened to dot-notation names ("solver.tolerance"), each leaf boxed with
// its decoded type. A missing file returns ErrConfigNotFound so callers can
// proceed with defaults; any other failure is fatal.
func LoadFile(h *Handler[string], path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("failed to read parameter file %q: %w", path, err)
	}

	nested := make(map[string]any)
	if err := toml.Unmarshal(data, &nested); err != nil {
		return fmt.Errorf("failed to parse TOML parameter file %q: %w", path, err)
	}

	for name, value := range flattenTree(nested, "") {
		h.Insert(name, FromAny(coerceLeaf(value)))
	}
	return nil
}

// ApplyArgs overlays command-line values onto the handler, so CLI input takes
// precedence over file input. Each value string is typed as bool, int64,
// float64, or string, whichever parses first; a flag given without a value
// becomes boolean true.
func ApplyArgs(h *Handler[string], a *Args) {
	for _, key := range a.Flags() {
		raw, _ := a.Value(key)
		if raw == "" {
			h.Insert(key, Box(true))
			continue
		}
		var value any
		if v, err := strconv.ParseBool(raw); err == nil {
			value = v
		} else if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
			value = v
		} else if v, err := strconv.ParseFloat(raw, 64); err == nil {
			value = v
		} else {
			value = raw
		}
		h.Insert(key, FromAny(value))
	}
}

// SaveFile writes the handler contents as a TOML file, nesting dot-notation
// names back into tables. The write is atomic: a temp file in the target
// directory, then a rename.
func SaveFile(h *Handler[string], path string) error {
	nested := make(map[string]any)
	for _, name := range h.Names() {
		v, _ := h.Data(name)
		setTree(nested, name, v.Raw())
	}

	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(nested); err != nil {
		return fmt.Errorf("failed to marshal parameters: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tempFile.Name()) // no-op once the rename succeeds

	if _, err := tempFile.WriteString(b.String()); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file %q: %w", tempFile.Name(), err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file %q: %w", tempFile.Name(), err)
	}
	if err := os.Rename(tempFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file to %q: %w", path, err)
	}
	return nil
}

// Scan decodes the handler contents into the target struct or map pointer,
// nesting dot-notation names into sections and mapping fields through the
// "toml" struct tag. Conversions are weakly typed, with hooks for durations
// and comma-separated slices.
func Scan(h *Handler[string], target any) error {
	nested := make(map[string]any)
	for _, name := range h.Names() {
		v, _ := h.Data(name)
		setTree(nested, name, v.Raw())
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(nested); err != nil {
		return fmt.Errorf("failed to scan parameters into %T: %w", target, err)
	}
	return nil
}

// flattenTree converts a nested map to a flat map with dot-notation names.
func flattenTree(nested map[string]any, prefix string) map[string]any {
	flat := make(map[string]any)
	for key, value := range nested {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if sub, isMap := value.(map[string]any); isMap {
			for subName, subValue := range flattenTree(sub, name) {
				flat[subName] = subValue
			}
		} else {
			flat[name] = value
		}
	}
	return flat
}

// setTree sets a value in a nested map using a dot-notation name, creating
// intermediate tables and replacing any non-table in the way.
func setTree(nested map[string]any, name string, value any) {
	segments := strings.Split(name, ".")
	current := nested
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}

// coerceLeaf narrows the []any the TOML decoder produces for arrays into the
// typed slices the printer knows, when the elements are homogeneous.
func coerceLeaf(value any) any {
	items, ok := value.([]any)
	if !ok || len(items) == 0 {
		return value
	}
	switch items[0].(type) {
	case string:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return value
			}
			out = append(out, s)
		}
		return out
	case int64:
		out := make([]int64, 0, len(items))
		for _, item := range items {
			i, ok := item.(int64)
			if !ok {
				return value
			}
			out = append(out, i)
		}
		return out
	case float64:
		out := make([]float64, 0, len(items))
		for _, item := range items {
			f, ok := item.(float64)
			if !ok {
				return value
			}
			out = append(out, f)
		}
		return out
	}
	return value
}
