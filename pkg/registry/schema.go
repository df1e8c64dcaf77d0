// pkg/registry/schema.go
package registry

// WorkerRegistry is the catalog of job workers this service exposes. It is
// the source of truth for BPMN modelers picking task types.
type WorkerRegistry struct {
	Version     string   `json:"version"`
	LastUpdated string   `json:"lastUpdated"`
	Workers     []Worker `json:"workers"`
}

// Worker describes one registered job worker.
type Worker struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Version     string   `json:"version"`
	TaskType    string   `json:"taskType"`
	Status      string   `json:"status"`
	ErrorCodes  []string `json:"errorCodes"`
	Timeout     string   `json:"timeout"`
	Retries     int      `json:"retries"`
	Tags        []string `json:"tags"`
}
