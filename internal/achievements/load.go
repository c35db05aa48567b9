package achievements

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema constrains externally supplied catalog JSON before any
// entry reaches NewCatalog. Tuning data arrives from product config, so
// shape errors should fail loudly at load time, not at evaluation time.
const catalogSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "category", "tier", "xp_reward", "requirement"],
    "additionalProperties": false,
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "name": {"type": "string", "minLength": 1},
      "description": {"type": "string"},
      "category": {"type": "string", "minLength": 1},
      "tier": {"enum": ["bronze", "silver", "gold", "platinum"]},
      "xp_reward": {"type": "integer", "minimum": 0},
      "requirement": {
        "type": "object",
        "required": ["type", "target"],
        "additionalProperties": false,
        "properties": {
          "type": {"enum": ["study_hours", "study_streak", "practice_tests", "score_improvement", "social_activity", "milestone"]},
          "target": {"type": "integer", "minimum": 1},
          "timeframe": {"type": "string"},
          "counter_key": {"type": "string"}
        }
      }
    }
  }
}`

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

type catalogEntryJSON struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Tier        string `json:"tier"`
	XPReward    int    `json:"xp_reward"`
	Requirement struct {
		Type       string `json:"type"`
		Target     int    `json:"target"`
		Timeframe  string `json:"timeframe"`
		CounterKey string `json:"counter_key"`
	} `json:"requirement"`
}

// LoadCatalog parses and validates catalog JSON, returning a ready
// Catalog. The document must conform to the catalog schema.
func LoadCatalog(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	schema, err := compiledCatalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation: %w", err)
	}

	var entries []catalogEntryJSON
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog entries: %w", err)
	}

	achievements := make([]Achievement, 0, len(entries))
	for _, e := range entries {
		achievements = append(achievements, Achievement{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Category:    e.Category,
			Tier:        Tier(e.Tier),
			XPReward:    e.XPReward,
			Requirement: Requirement{
				Type:       RequirementType(e.Requirement.Type),
				Target:     e.Requirement.Target,
				Timeframe:  e.Requirement.Timeframe,
				CounterKey: e.Requirement.CounterKey,
			},
		})
	}
	return NewCatalog(achievements)
}

func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(catalogSchema), &def); err != nil {
			compileSchemaError = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://achievement-catalog.json", def); err != nil {
			compileSchemaError = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile("schema://achievement-catalog.json")
	})
	return compiledSchema, compileSchemaError
}
