// Package cli implements the jsonapi command-line interface.
//
// This package provides commands for working with JSON:API query strings
// and documents from the shell: decoding and re-encoding query strings,
// validating documents, flattening documents into plain values, and
// serving a demo resource graph over HTTP. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - query: Decode a query string and explain its components
//   - check: Validate a JSON:API document file
//   - flatten: Denormalize a document into a plain JSON value
//   - serve: Serve a TOML-defined resource graph over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so every command shares one configured
// logger.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jsonapi/pkg/buildinfo"
	"github.com/matzehuels/jsonapi/pkg/observability"
)

// Execute runs the jsonapi CLI and returns an error if any command
// fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "jsonapi",
		Short:        "jsonapi works with JSON:API query strings and documents",
		Long:         `jsonapi is a CLI tool for the JSON:API document format: it decodes and re-encodes query strings, validates and flattens documents, and serves a demo resource graph with full sparse-fieldset and include support.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			hooks := &logHooks{logger: logger}
			observability.SetCacheHooks(hooks)
			observability.SetHTTPHooks(hooks)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newQueryCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newFlattenCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
