// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Load reads a worker registry file.
func Load(path string) (*WorkerRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg WorkerRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}
	return &reg, nil
}

// Save writes the registry back to disk, stamping LastUpdated.
func Save(reg *WorkerRegistry, path string) error {
	reg.LastUpdated = time.Now().Format(time.RFC3339)

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks the registry for missing fields and duplicate ids.
func (r *WorkerRegistry) Validate() error {
	if len(r.Workers) == 0 {
		return fmt.Errorf("registry contains no workers")
	}

	ids := make(map[string]bool)
	for _, w := range r.Workers {
		if w.ID == "" {
			return fmt.Errorf("worker missing required field: id")
		}
		if ids[w.ID] {
			return fmt.Errorf("duplicate worker id: %s", w.ID)
		}
		ids[w.ID] = true

		if w.DisplayName == "" {
			return fmt.Errorf("worker %s missing required field: displayName", w.ID)
		}
		if w.TaskType == "" {
			return fmt.Errorf("worker %s missing required field: taskType", w.ID)
		}
		if w.Category == "" {
			return fmt.Errorf("worker %s missing required field: category", w.ID)
		}
	}

	return nil
}

// Find returns the worker with the given id, nil when absent.
func (r *WorkerRegistry) Find(id string) *Worker {
	for i := range r.Workers {
		if r.Workers[i].ID == id {
			return &r.Workers[i]
		}
	}
	return nil
}
