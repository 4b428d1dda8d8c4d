package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var compiled = struct {
	sync.Mutex
	byName map[string]*jsonschema.Schema
}{byName: map[string]*jsonschema.Schema{}}

// validateResponse checks raw against schema. A nil schema accepts anything.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalidResponse(raw, "response is not JSON: %w", err)
	}
	sch, err := compileSchema(schema)
	if err != nil {
		return invalidResponse(raw, "compile schema %s: %w", schema.Name, err)
	}
	if err := sch.Validate(doc); err != nil {
		return invalidResponse(raw, "response does not match %s: %w", schema.Name, err)
	}
	return nil
}

// compileSchema compiles schema once per name.
func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	compiled.Lock()
	defer compiled.Unlock()
	if s, ok := compiled.byName[schema.Name]; ok {
		return s, nil
	}

	b, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, err
	}
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("mem://schemas/%s.json", schema.Name)
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, def); err != nil {
		return nil, err
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, err
	}
	compiled.byName[schema.Name] = s
	return s, nil
}
