package template

import (
	"encoding/json"
	"fmt"

	"github.com/swaggest/jsonschema-go"
)

// Schema returns the JSON schema of a layout document.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{}
	schema, err := reflector.Reflect(Layout{})
	if err != nil {
		return nil, fmt.Errorf("reflect layout schema: %w", err)
	}
	raw, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal layout schema: %w", err)
	}
	return raw, nil
}
