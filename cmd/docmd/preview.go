package main

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/docmd/pkg/errors"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// renderPreview pretty-prints the produced Markdown for the terminal. When
// the destination is not a terminal the raw Markdown passes through
// untouched, so piping stays lossless.
func renderPreview(out io.Writer, markdown string) error {
	file, ok := out.(*os.File)
	if !ok || !isatty.IsTerminal(file.Fd()) {
		_, err := fmt.Fprint(out, markdown)
		return err
	}

	style := "light"
	if termenv.HasDarkBackground() {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "could not create preview renderer")
	}

	pretty, err := renderer.Render(markdown)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "could not render preview")
	}

	_, err = fmt.Fprint(out, pretty)
	return err
}
