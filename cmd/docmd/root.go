package main

import (
	"bytes"
	"io"
	"os"

	"github.com/arthur-debert/docmd/pkg/config"
	"github.com/arthur-debert/docmd/pkg/doctree"
	"github.com/arthur-debert/docmd/pkg/errors"
	"github.com/arthur-debert/docmd/pkg/logging"
	"github.com/arthur-debert/docmd/pkg/render"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

type rootOptions struct {
	verbosity  int
	simple     bool
	preview    bool
	outputPath string
	configPath string
}

// NewRootCmd builds the docmd command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "docmd INPUT",
		Short: "Convert structured document XML to Markdown",
		Long: `docmd renders the XML document tree produced by a structured text
parser (sections, titles, lists, notes, footnotes, references, figures,
inline markup) into linear Markdown text.

Nodes of a kind docmd does not know are skipped with a diagnostic; the
conversion itself always completes.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	cmd.Flags().BoolVar(&opts.simple, "simple", false, "Simple output profile: no HTML anchors on section titles")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render the result for the terminal instead of emitting raw Markdown")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write Markdown to this file instead of stdout")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/docmd/config.toml)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newKindsCmd())
	cmd.AddCommand(newManCmd(cmd))

	return cmd
}

func runConvert(cmd *cobra.Command, opts *rootOptions, inputPath string) error {
	logger := logging.GetLogger("cmd.convert")

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = config.Path()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	renderOpts := render.Options{Anchors: cfg.Output.Anchors}
	if opts.simple {
		renderOpts.Anchors = false
	}

	logger.Info().
		Str("input", inputPath).
		Str("output", opts.outputPath).
		Bool("anchors", renderOpts.Anchors).
		Msg("Starting conversion")

	tree, err := doctree.Load(inputPath)
	if err != nil {
		return err
	}

	// Preview renders into memory first; everything else streams straight
	// to its destination
	if opts.preview && opts.outputPath == "" {
		var buf bytes.Buffer
		sink := render.NewStreamSink(&buf)
		render.Render(tree, sink, renderOpts)
		if err := sink.Err(); err != nil {
			return errors.Wrap(err, errors.ErrOutputWrite, "failed to render document")
		}
		return renderPreview(cmd.OutOrStdout(), buf.String())
	}

	out, closeOut, err := openOutput(cmd, opts.outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	sink := render.NewStreamSink(out)
	render.Render(tree, sink, renderOpts)
	if err := sink.Err(); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output")
	}

	logger.Info().Msg("Conversion finished")
	return nil
}

func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrOutputCreate, "could not create output file %s", path)
	}
	return file, func() { _ = file.Close() }, nil
}

func newManCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "DOCMD",
				Section: "1",
			}
			return doc.GenManTree(root, header, "/tmp")
		},
	}
}
