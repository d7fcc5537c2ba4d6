package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/newton-fractal/pkg/config"
	"github.com/willbeason/newton-fractal/pkg/frame"
	"github.com/willbeason/newton-fractal/pkg/output"
)

type options struct {
	config.Config

	Output  string
	Verbose bool
}

func mainCmd() *cobra.Command {
	opts := &options{Config: config.Default()}

	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Render the Newton fractal of z^3 - 1",
		Args:  cobra.ExactArgs(0),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.Verbose)
			return opts.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	opts.BindFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug output")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "file to write; .png, .bmp or .tiff (default out/<timestamp>.png)")

	cmd.AddCommand(serveCmd(opts), viewCmd(opts))

	return cmd
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	frame.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	path := opts.Output
	if path == "" {
		path = output.DefaultPath(time.Now())
	}

	// Fail on an unsupported extension before spending time on the frame.
	_, err := output.FormatFromPath(path)
	if err != nil {
		return err
	}

	renderer, err := opts.Renderer()
	if err != nil {
		return err
	}

	buf, err := renderer.Render(cmd.Context(), nil)
	if err != nil {
		return err
	}

	err = output.Save(path, buf.Image())
	if err != nil {
		return fmt.Errorf("saving frame: %w", err)
	}

	frame.Logger().Info("frame saved", "path", path)
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
