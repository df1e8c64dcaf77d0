// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"adoption-workers/pkg/registry"
)

const defaultRegistryPath = "configs/worker-registry.json"

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// Add command flags
	idAdd := addCmd.String("id", "", "Worker ID (e.g., compute-compatibility)")
	displayName := addCmd.String("displayName", "", "Display Name (e.g., Compute Compatibility)")
	description := addCmd.String("description", "", "Description")
	category := addCmd.String("category", "matching", "Category")
	taskType := addCmd.String("taskType", "", "Zeebe Task Type (e.g., compute-compatibility)")
	version := addCmd.String("version", "1.0.0", "Version")
	status := addCmd.String("status", "planned", "Status (planned, in-progress, completed)")
	pathAdd := addCmd.String("path", defaultRegistryPath, "Path to registry file")

	// Update command flags
	idUpdate := updateCmd.String("id", "", "Worker ID to update")
	field := updateCmd.String("field", "", "Field to update (status, version, etc.)")
	value := updateCmd.String("value", "", "New value for the field")
	pathUpdate := updateCmd.String("path", defaultRegistryPath, "Path to registry file")

	// Validate command flags
	pathValidate := validateCmd.String("path", defaultRegistryPath, "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		addCmd.Parse(os.Args[2:])
		if *idAdd == "" || *displayName == "" || *taskType == "" {
			fmt.Println("Error: id, displayName, and taskType are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		worker := registry.Worker{
			ID:          *idAdd,
			DisplayName: *displayName,
			Description: *description,
			Category:    *category,
			Version:     *version,
			TaskType:    *taskType,
			Status:      *status,
			ErrorCodes:  []string{},
			Timeout:     "10s",
			Retries:     0,
			Tags:        []string{},
		}
		if err := addWorker(&worker, *pathAdd); err != nil {
			fmt.Printf("Error adding worker: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Added worker: %s\n", *idAdd)

	case "update":
		updateCmd.Parse(os.Args[2:])
		if *idUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		if err := updateWorker(*idUpdate, *field, *value, *pathUpdate); err != nil {
			fmt.Printf("Error updating worker: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Updated worker %s, field %s to %s\n", *idUpdate, *field, *value)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		reg, err := registry.Load(*pathValidate)
		if err != nil {
			fmt.Printf("Failed to load registry: %v\n", err)
			os.Exit(1)
		}
		if err := reg.Validate(); err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry validation passed. Found %d workers.\n", len(reg.Workers))

	case "help":
		fallthrough
	default:
		help()
	}
}

func addWorker(worker *registry.Worker, path string) error {
	reg, err := registry.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			reg = &registry.WorkerRegistry{
				Version:     "1.0.0",
				LastUpdated: time.Now().Format(time.RFC3339),
			}
		} else {
			return fmt.Errorf("failed to load registry: %w", err)
		}
	}

	if reg.Find(worker.ID) != nil {
		return fmt.Errorf("worker with id %s already exists", worker.ID)
	}

	reg.Workers = append(reg.Workers, *worker)
	return registry.Save(reg, path)
}

func updateWorker(id, field, value, path string) error {
	reg, err := registry.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	worker := reg.Find(id)
	if worker == nil {
		return fmt.Errorf("worker with id %s not found", id)
	}

	switch field {
	case "status":
		worker.Status = value
	case "version":
		worker.Version = value
	case "displayName":
		worker.DisplayName = value
	case "description":
		worker.Description = value
	case "category":
		worker.Category = value
	case "taskType":
		worker.TaskType = value
	case "timeout":
		worker.Timeout = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retries value: %w", err)
		}
		worker.Retries = retries
	default:
		return fmt.Errorf("unknown field: %s", field)
	}

	return registry.Save(reg, path)
}

func help() {
	fmt.Print(`
Usage: registry-updater <command> [flags]

Commands:
  add      Add a new worker to the registry
  update   Update an existing worker's field
  validate Validate the registry file
  help     Show this help message

Examples:
  registry-updater add -id compute-compatibility -displayName "Compute Compatibility" -description "Scores one application against one dog" -taskType compute-compatibility
  registry-updater update -id compute-compatibility -field status -value completed
  registry-updater validate -path configs/worker-registry.json

Use 'registry-updater <command> -h' for more information about a command.
`)
}
