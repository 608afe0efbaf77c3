package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/isaacphi/tirc/internal/config"
)

func main() {
	var outFile string
	flag.StringVar(&outFile, "out", "tirc.schema.json", "Output file path")
	flag.Parse()

	path, err := writeSchema(outFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Schema written to %s\n", path)
}

// writeSchema writes the config JSON schema to outFile, resolved against the
// working directory, and returns the absolute path.
func writeSchema(outFile string) (string, error) {
	if !filepath.IsAbs(outFile) {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("error getting working directory: %w", err)
		}
		outFile = filepath.Join(wd, outFile)
	}

	schema, err := config.GenerateJSONSchema()
	if err != nil {
		return "", fmt.Errorf("error generating schema: %w", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling schema: %w", err)
	}

	dir := filepath.Dir(outFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return "", fmt.Errorf("error writing schema to %s: %w", outFile, err)
	}
	return outFile, nil
}
