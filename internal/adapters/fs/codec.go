package fs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bft-labs/tasker/internal/domain"
)

// taskListSchema describes the on-disk format: an array of
// [description, is_done] pairs.
const taskListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "array",
    "items": [
      {"type": "string"},
      {"type": "boolean"}
    ],
    "minItems": 2,
    "maxItems": 2
  }
}`

var schema = jsonschema.MustCompileString("tasks.schema.json", taskListSchema)

// Encode serializes tasks in the on-disk format with 2-space indentation
// and a trailing newline.
func Encode(tasks domain.List) ([]byte, error) {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses the on-disk format. Any failure is a *domain.DecodeError.
func Decode(data []byte) (domain.List, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.DecodeError{Err: err}
	}

	if err := schema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	var tasks domain.List
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &domain.DecodeError{Err: err}
	}
	if tasks == nil {
		tasks = domain.List{}
	}
	return tasks, nil
}

// schemaError reduces a schema validation failure to its first leaf cause.
func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &domain.DecodeError{Err: err}
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &domain.DecodeError{
		Location: pointerToLocation(ve.InstanceLocation),
		Err:      fmt.Errorf("%s", ve.Message),
	}
}

// pointerToLocation converts a JSON pointer such as "/2/1" to "[2][1]".
func pointerToLocation(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		if part == "" {
			continue
		}
		if _, err := strconv.Atoi(part); err == nil {
			b.WriteString("[" + part + "]")
			continue
		}
		b.WriteString("." + part)
	}
	return b.String()
}
