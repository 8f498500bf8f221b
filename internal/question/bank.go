package question

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"path"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/*.json
var poolFS embed.FS

// poolSchema constrains each embedded pool file: a non-empty array of
// well-formed questions. Cross-field checks (correct index in range,
// unique IDs) are enforced in code after validation.
var poolSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"prompt": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items":    map[string]any{"type": "string"},
			},
			"correct": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"explanation": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"id", "prompt", "options", "correct", "explanation"},
		"additionalProperties": false,
	},
}

// ValidationError reports a malformed embedded question pool.
type ValidationError struct {
	File string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question pool %s: %v", e.File, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Bank holds the loaded question pools, keyed by module ID.
type Bank struct {
	pools map[string][]Question
}

// NewBank loads and validates every embedded pool file. The file stem
// is the module ID (data/mutual-funds.json -> "mutual-funds").
func NewBank() (*Bank, error) {
	compiled, err := compilePoolSchema()
	if err != nil {
		return nil, fmt.Errorf("compile pool schema: %w", err)
	}

	entries, err := poolFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read pool dir: %w", err)
	}

	pools := make(map[string][]Question, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		raw, err := poolFS.ReadFile(path.Join("data", name))
		if err != nil {
			return nil, fmt.Errorf("read pool %s: %w", name, err)
		}

		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, &ValidationError{File: name, Err: fmt.Errorf("invalid JSON: %w", err)}
		}
		if err := compiled.Validate(parsed); err != nil {
			return nil, &ValidationError{File: name, Err: err}
		}

		var pool []Question
		if err := json.Unmarshal(raw, &pool); err != nil {
			return nil, &ValidationError{File: name, Err: err}
		}
		if err := checkPool(pool); err != nil {
			return nil, &ValidationError{File: name, Err: err}
		}

		moduleID := name[:len(name)-len(path.Ext(name))]
		pools[moduleID] = pool
	}

	return &Bank{pools: pools}, nil
}

// checkPool enforces the constraints the JSON schema cannot express.
func checkPool(pool []Question) error {
	seen := make(map[string]bool, len(pool))
	for _, q := range pool {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("question %q: correct index %d out of range [0,%d)", q.ID, q.Correct, len(q.Options))
		}
	}
	return nil
}

func compilePoolSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(poolSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question-pool.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}

// Pool returns a copy of the full pool for moduleID. Unknown modules
// yield an empty slice, not an error.
func (b *Bank) Pool(moduleID string) []Question {
	pool := b.pools[moduleID]
	out := make([]Question, len(pool))
	copy(out, pool)
	return out
}

// Select materializes a question set for one session: the module's pool
// uniformly shuffled and truncated to the type's cap. testID is a display
// label only; selection is keyed by module and type. Unknown modules
// degrade to an empty set.
func (b *Bank) Select(moduleID, testID string, tt TestType) []Question {
	_ = testID

	set := b.Pool(moduleID)
	rand.Shuffle(len(set), func(i, j int) {
		set[i], set[j] = set[j], set[i]
	})

	if limit := Cap(tt); len(set) > limit {
		set = set[:limit]
	}
	return set
}
