// Package config loads YAML configuration for the summarization pipeline.
//
// There are two ways in. ReadYAML reads a whole document into a Box, an
// ordered read-only tree with keyed, path and typed access. Provider feeds a
// typed struct through four extension points:
//   - Parser: deserializes raw data into config struct, with path navigation support
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// Paths use colon (:) as the separator, both for Box lookups and for the
// Provider path argument:
//
//	"data_ingestion:root_dir"   -> config["data_ingestion"]["root_dir"]
//	"model_trainer:params"      -> config["model_trainer"]["params"]
//	""                          -> entire document (Provider only)
//
// Box lookups try the whole path as a literal key before splitting it, so
// "localhost:8080" and "" name top-level keys when the document has them.
//
// # Example
//
//	box, err := config.ReadYAML(logger, "config/config.yaml")
//	if err != nil {
//	    return err
//	}
//	root, _ := box.String("artifacts_root")
//
//	var params TrainerParams
//	err = box.Decode("model_trainer:params", &params)
package config
