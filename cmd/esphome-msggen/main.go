// Command esphome-msggen generates the message and entity type tables of
// package wire from the message schema.
//
// Usage:
//
//	esphome-msggen -schema docs/api/messages.yaml -output pkg/wire
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

const outputFile = "message_type_gen.go"

func main() {
	schemaPath := flag.String("schema", "", "Path to the message schema YAML")
	outputDir := flag.String("output", "", "Output directory for the generated Go file")
	pkgName := flag.String("package", "wire", "Package name of the generated file")
	flag.Parse()

	if *schemaPath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: esphome-msggen -schema <path> -output <dir> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*schemaPath, *outputDir, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaPath, outputDir, pkgName string) error {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	code, err := Generate(schema, pkgName)
	if err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	outPath := filepath.Join(outputDir, outputFile)
	if err := writeFormatted(outPath, code); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	fmt.Printf("  generated %s (%d messages, %d entity types)\n",
		outPath, len(schema.Messages), len(schema.Entities()))
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
