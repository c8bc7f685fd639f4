package tirocks

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ConfigSchema returns the JSON Schema (Draft 2020-12) describing Config.
func ConfigSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(&Config{})

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}
