// Package workspace prepares the on-disk layout of a pipeline run.
//
// The application config file names an artifacts root, optional extra
// directories and one section per pipeline stage, each with its own
// root_dir:
//
//	artifacts_root: artifacts
//	directories:
//	  - artifacts/logs
//	data_ingestion:
//	  root_dir: artifacts/data_ingestion
//
// NewModule wires the config loading into Fx and creates every directory
// when the application starts.
package workspace
