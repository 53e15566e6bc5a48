// Package tomldoc holds a TOML document as a tree of nested tables
// addressed by dot-joined paths.
package tomldoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	"github.com/trebuchet-org/treb-tracker/internal/domain"
)

// Tree is a parsed TOML document. Tables are map[string]any, everything
// else is a leaf.
type Tree map[string]any

// New returns an empty document
func New() Tree {
	return Tree{}
}

// Parse decodes TOML text into a tree
func Parse(data []byte) (Tree, error) {
	doc := map[string]any{}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, &domain.FormatError{Err: err}
	}
	return Tree(doc), nil
}

// Serialize encodes the tree back to TOML text
func (t Tree) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]any(t)); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Read returns the value at path. Missing segments, and segments that
// descend into a non-table value, report absent.
func (t Tree) Read(path string) (any, bool) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, false
	}

	var current any = map[string]any(t)
	for _, segment := range segments {
		table, ok := asTable(current)
		if !ok {
			return nil, false
		}
		current, ok = table[segment]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Insert writes value at path, creating intermediate tables as needed.
// It refuses to replace a value that is already present.
func (t Tree) Insert(path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	table := map[string]any(t)
	for i, segment := range segments[:len(segments)-1] {
		next, ok := table[segment]
		if !ok {
			child := map[string]any{}
			table[segment] = child
			table = child
			continue
		}
		child, ok := asTable(next)
		if !ok {
			return &domain.InsertionError{
				Path:   strings.Join(segments[:i+1], "."),
				Reason: "existing value is not a table",
			}
		}
		table = child
	}

	last := segments[len(segments)-1]
	if _, exists := table[last]; exists {
		return &domain.InsertionError{Path: path, Reason: "a value already exists"}
	}
	table[last] = value
	return nil
}

// Set writes value at path, replacing any existing value. The parent
// table must already exist.
func (t Tree) Set(path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	table := map[string]any(t)
	for i, segment := range segments[:len(segments)-1] {
		next, ok := table[segment]
		if !ok {
			return &domain.InsertionError{
				Path:   strings.Join(segments[:i+1], "."),
				Reason: "parent table does not exist",
			}
		}
		child, ok := asTable(next)
		if !ok {
			return &domain.InsertionError{
				Path:   strings.Join(segments[:i+1], "."),
				Reason: "existing value is not a table",
			}
		}
		table = child
	}

	table[segments[len(segments)-1]] = value
	return nil
}

// Upsert inserts value when path is absent and overwrites it otherwise.
// inserted reports which of the two happened.
func (t Tree) Upsert(path string, value any) (inserted bool, err error) {
	if _, ok := t.Read(path); ok {
		return false, t.Set(path, value)
	}
	return true, t.Insert(path, value)
}

// Decode converts a subtree into out. Unknown or missing struct fields are
// errors, and string leaves are passed through encoding.TextUnmarshaler
// where the target implements it.
func Decode(path string, value any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.TextUnmarshallerHookFunc(),
		ErrorUnused: true,
		ErrorUnset:  true,
		Result:      out,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(value); err != nil {
		return &domain.SerializationError{Path: path, Err: err}
	}
	return nil
}

func splitPath(path string) ([]string, error) {
	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, &domain.InsertionError{Path: path, Reason: "empty path segment"}
		}
	}
	return segments, nil
}

func asTable(v any) (map[string]any, bool) {
	switch table := v.(type) {
	case map[string]any:
		return table, true
	case Tree:
		return table, true
	default:
		return nil, false
	}
}
