package root

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/textsummarizer/config"
	yamlparser "github.com/0xalexb/textsummarizer/config/parser/yaml"
	sinkfile "github.com/0xalexb/textsummarizer/config/sink/file"

	"github.com/spf13/cobra"
)

var errNotScalar = errors.New("value is not a scalar")

func newConfigCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration files",
		Example: `  # Print the whole document
  textsummarizer config show config/config.yaml

  # Print one section as JSON
  textsummarizer config show config/config.yaml --path model_trainer --json

  # Print a single value
  textsummarizer config get params.yaml TrainingArguments:num_train_epochs

  # Write one section to its own file
  textsummarizer config export params.yaml out/trainer.yaml --path TrainingArguments`,
	}

	cmd.AddCommand(newConfigShowCmd(flags))
	cmd.AddCommand(newConfigGetCmd(flags))
	cmd.AddCommand(newConfigExportCmd(flags))

	return cmd
}

func newConfigShowCmd(flags *rootFlags) *cobra.Command {
	var (
		path   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a configuration file or one of its sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := lookup(flags, args[0], path)
			if err != nil {
				return err
			}

			var data []byte

			if asJSON {
				data, err = json.MarshalIndent(value, "", "  ")
				data = append(data, '\n')
			} else {
				data, err = yamlparser.NewParser().Marshal(value)
			}

			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Colon-separated path of the section to print")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of YAML")

	return cmd
}

func newConfigGetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print a single scalar value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := lookup(flags, args[0], args[1])
			if err != nil {
				return err
			}

			switch value.(type) {
			case *config.Box, []any:
				return fmt.Errorf("%w: %s", errNotScalar, args[1])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)

			return err
		},
	}
}

func newConfigExportCmd(flags *rootFlags) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "export <file> <output>",
		Short: "Write a configuration file or one of its sections to another file",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			value, err := lookup(flags, args[0], path)
			if err != nil {
				return err
			}

			data, err := yamlparser.NewParser().Marshal(value)
			if err != nil {
				return err
			}

			sink, err := sinkfile.NewSink(args[1])
			if err != nil {
				return err
			}

			err = sink.Store(data)
			if err != nil {
				return err
			}

			flags.logger.Info("config exported", slog.String("source", args[0]), slog.String("path", sink.Path()))

			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Colon-separated path of the section to export")

	return cmd
}

func lookup(flags *rootFlags, file, path string) (any, error) {
	box, err := config.ReadYAML(flags.logger, file)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return box, nil
	}

	value, ok := box.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", config.ErrKeyNotFound, path)
	}

	return value, nil
}
