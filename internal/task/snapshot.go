package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Snapshot is the persisted form of a task. It carries no owner.
type Snapshot struct {
	ID     int    `json:"id"`
	Status bool   `json:"status"`
	Text   string `json:"text"`
}

// Task builds a detached task from the snapshot.
func (s Snapshot) Task() *Task {
	return New(s.ID, s.Text, s.Status)
}

const snapshotSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "status", "text"],
		"properties": {
			"id": {"type": "integer"},
			"status": {"type": "boolean"},
			"text": {"type": "string"}
		}
	}
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("snapshot.schema.json", snapshotSchema)
	})
	return schema, schemaErr
}

// ValidationError describes a stored snapshot that does not match the schema.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// EncodeSnapshots serializes tasks as a JSON array of {id,status,text}.
func EncodeSnapshots(tasks []*Task) string {
	snaps := make([]Snapshot, 0, len(tasks))
	for _, t := range tasks {
		snaps = append(snaps, t.Snapshot())
	}
	data, err := json.Marshal(snaps)
	if err != nil {
		// Snapshot holds only an int, a bool and a string.
		panic(err)
	}
	return string(data)
}

// DecodeSnapshots parses stored data. Both the JSON array form and the older
// bare comma-joined objects form are accepted.
func DecodeSnapshots(data string) ([]Snapshot, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return nil, errors.New("snapshot is empty")
	}
	if !strings.HasPrefix(data, "[") {
		data = "[" + data + "]"
	}

	var doc any
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile snapshot schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var snaps []Snapshot
	if err := json.Unmarshal([]byte(data), &snaps); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return snaps, nil
}

func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	return &ValidationError{
		Path: pointerToPath(leaf.InstanceLocation),
		Err:  errors.New(leaf.Message),
	}
}

func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	path := ""
	for _, part := range strings.Split(ptr, "/") {
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}
	return path
}
