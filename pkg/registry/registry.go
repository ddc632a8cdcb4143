// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg ActivityRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// FindByTaskType returns the registered activity for a Zeebe task type.
func (r *ActivityRegistry) FindByTaskType(taskType string) (*Activity, error) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], nil
		}
	}
	return nil, fmt.Errorf("task type %q not found in activity registry", taskType)
}

// InputSchemaJSON returns the activity's input schema serialized as JSON,
// suitable for compiling with a JSON Schema validator.
func (a *Activity) InputSchemaJSON() ([]byte, error) {
	if a.InputSchema == nil {
		return nil, fmt.Errorf("activity %s has no input schema", a.ID)
	}
	return json.Marshal(a.InputSchema)
}
