// Package yaml provides the YAML codec for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for efficient path navigation. The parser converts
// colon-separated paths (e.g., "data_ingestion:root_dir") to YAML path format
// (e.g., "$.data_ingestion.root_dir") internally.
//
// Usage:
//
//	parser := yaml.NewParser()
//	box := config.NewBox()
//	err := parser.Parse(data, box, "")
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "data_ingestion:root_dir" -> "$.data_ingestion.root_dir"
//
// Marshal is the inverse used when configuration is written back to disk.
package yaml
