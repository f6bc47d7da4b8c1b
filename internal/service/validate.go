package service

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// activitySchema is the strict shape gate applied only when opted in; the
// default contract passes upstream records through unvalidated.
const activitySchema = `{
	"type": "object",
	"required": ["id", "name", "time", "description", "location", "distance", "icon"],
	"properties": {
		"id": {"type": "integer", "minimum": 1},
		"name": {"type": "string", "minLength": 1},
		"time": {"type": "string"},
		"description": {"type": "string"},
		"location": {"type": "string"},
		"distance": {"type": "string"},
		"icon": {"type": "string"}
	}
}`

// ValidateActivities checks each parsed activity against the activity schema.
func ValidateActivities(activities Activities) error {
	schemaLoader := gojsonschema.NewStringLoader(activitySchema)
	for i, activity := range activities {
		result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(activity))
		if err != nil {
			return fmt.Errorf("activity validation error: %w", err)
		}
		if !result.Valid() {
			return fmt.Errorf("activity %d failed validation: %s", i+1, result.Errors()[0])
		}
	}
	return nil
}
