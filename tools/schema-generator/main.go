// Command schema-generator writes the JSON Schema of partui.yml to
// schema/definitions so editors can validate configuration files.
package main

import (
	"os"
	"path/filepath"

	"github.com/grovetools/partui/config"
	"github.com/grovetools/partui/logging"
)

func main() {
	log := logging.NewLogger("schema-generator")

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.WithError(err).Fatal("Error generating schema")
	}

	outputDir := filepath.Join("schema", "definitions")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		log.WithError(err).Fatal("Error creating schema directory")
	}

	outputPath := filepath.Join(outputDir, "partui.schema.json")
	if err := os.WriteFile(outputPath, schemaBytes, 0o644); err != nil {
		log.WithError(err).Fatal("Error writing schema file")
	}

	logging.NewPrettyLogger().Success("Generated schema at %s", outputPath)
}
