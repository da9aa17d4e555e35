package webhook

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	ghwebhooks "github.com/go-playground/webhooks/v6/github"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	compileOnce sync.Once
	compiled    map[ghwebhooks.Event]*jsonschema.Schema
	compileErr  error
)

func schemaURL(name string) string {
	return "https://actions-insider.dev/schemas/" + name
}

func compileSchemas() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	files := map[ghwebhooks.Event]string{
		ghwebhooks.WorkflowRunEvent: "workflow_run.json",
		ghwebhooks.WorkflowJobEvent: "workflow_job.json",
	}
	for _, name := range files {
		payload, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			compileErr = fmt.Errorf("read schema %s: %w", name, err)
			return
		}
		if err := compiler.AddResource(schemaURL(name), bytes.NewReader(payload)); err != nil {
			compileErr = fmt.Errorf("add schema resource %s: %w", name, err)
			return
		}
	}
	out := make(map[ghwebhooks.Event]*jsonschema.Schema, len(files))
	for kind, name := range files {
		s, err := compiler.Compile(schemaURL(name))
		if err != nil {
			compileErr = fmt.Errorf("compile schema %s: %w", name, err)
			return
		}
		out[kind] = s
	}
	compiled = out
}

// Validate checks payload against the embedded schema for kind. Kinds without a schema pass.
func Validate(kind ghwebhooks.Event, payload []byte) error {
	compileOnce.Do(compileSchemas)
	if compileErr != nil {
		return compileErr
	}
	s, ok := compiled[kind]
	if !ok {
		return nil
	}
	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return fmt.Errorf("decode json for %s: %w", kind, err)
	}
	if err := s.Validate(value); err != nil {
		return fmt.Errorf("validate %s: %w", kind, err)
	}
	return nil
}
