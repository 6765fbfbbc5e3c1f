package question

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/sumstars/sumstars/internal/difficulty"
)

//go:embed templates.json
var defaultPack []byte

// Pools holds the loaded template pools, one per tier.
type Pools map[difficulty.Tier][]Template

// compiledPackSchema caches the compiled pack schema.
var compiledPackSchema struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// LoadPools parses and validates a template pack.
// The pack is validated against the pack schema first; templates with a
// valid shape are then cross-checked (placeholders present, min <= max)
// and grouped by tier.
func LoadPools(data []byte) (Pools, error) {
	if err := validatePack(data); err != nil {
		return nil, err
	}

	var pack struct {
		Templates []Template `json:"templates"`
	}
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("parse template pack: %w", err)
	}

	pools := make(Pools)
	seen := make(map[string]bool)
	for _, tmpl := range pack.Templates {
		if seen[tmpl.ID] {
			return nil, fmt.Errorf("duplicate template id %q", tmpl.ID)
		}
		seen[tmpl.ID] = true

		if tmpl.MinValue > tmpl.MaxValue {
			return nil, fmt.Errorf("template %q: minValue %d > maxValue %d", tmpl.ID, tmpl.MinValue, tmpl.MaxValue)
		}
		if !strings.Contains(tmpl.Text, "{a}") || !strings.Contains(tmpl.Text, "{b}") {
			return nil, fmt.Errorf("template %q: text must contain {a} and {b} placeholders", tmpl.ID)
		}

		pools[tmpl.Tier] = append(pools[tmpl.Tier], tmpl)
	}
	return pools, nil
}

// DefaultPools loads the embedded template pack.
func DefaultPools() (Pools, error) {
	return LoadPools(defaultPack)
}

// validatePack checks raw pack bytes against the pack JSON Schema.
func validatePack(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid pack JSON: %w", err)
	}

	compiledPackSchema.once.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(packSchema), &def); err != nil {
			compiledPackSchema.err = fmt.Errorf("parse pack schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://template-pack.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compiledPackSchema.err = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledPackSchema.schema, compiledPackSchema.err = c.Compile(schemaURL)
	})
	if compiledPackSchema.err != nil {
		return compiledPackSchema.err
	}

	if err := compiledPackSchema.schema.Validate(parsed); err != nil {
		return fmt.Errorf("template pack schema validation failed: %w", err)
	}
	return nil
}
