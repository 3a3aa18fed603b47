package workspace

import (
	"context"
	"log/slog"

	"github.com/0xalexb/textsummarizer/config"
	filefetcher "github.com/0xalexb/textsummarizer/config/fetcher/file"
	yamlparser "github.com/0xalexb/textsummarizer/config/parser/yaml"
	"github.com/0xalexb/textsummarizer/fsutil"

	"go.uber.org/fx"
)

// ModuleName is the Fx module name used by NewModule.
const ModuleName = "workspace"

type moduleOptions struct {
	verbose bool
}

// Option configures the workspace module.
type Option func(*moduleOptions)

// WithVerbose toggles the per-directory log line emitted on start.
func WithVerbose(verbose bool) Option {
	return func(opts *moduleOptions) {
		opts.verbose = verbose
	}
}

// NewModule returns an Fx module that loads configPath and creates the
// workspace directories when the application starts.
//
// The module provides config.Parser, config.DataFetcher, *Layout and
// *config.Box. The file is read once; Layout and Box are decoded from the
// same data, and Box is resolved first so an empty or malformed file fails
// with config.ErrConfigEmpty or config.ErrConfigLoad. It expects
// *slog.Logger to be supplied by the application.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(configPath string, opts ...Option) fx.Option {
	options := moduleOptions{verbose: true}

	for _, apply := range opts {
		apply(&options)
	}

	return fx.Module(ModuleName,
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
			),
			fx.Annotate(
				filefetcher.NewFetcher(configPath),
				fx.As(new(config.DataFetcher)),
			),
			config.BoxProvider(configPath),
			config.Provider(new(Layout), ""),
		),
		fx.Invoke(func(lifecycle fx.Lifecycle, logger *slog.Logger, box *config.Box, layout *Layout) {
			lifecycle.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					return fsutil.CreateDirectories(logger, layout.Paths(box), fsutil.WithVerbose(options.verbose))
				},
			})
		}),
	)
}
