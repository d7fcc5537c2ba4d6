package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/newton-fractal/pkg/frame"
	"github.com/willbeason/newton-fractal/pkg/stream"
)

func serveCmd(opts *options) *cobra.Command {
	addr := ":8080"
	var origins []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a page that draws the fractal as it renders",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return serve(cmd.Context(), addr, origins, opts)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "address to listen on")
	cmd.Flags().StringSliceVar(&origins, "origin", nil, "additional origins allowed to open the stream")

	return cmd
}

// newMux serves the canvas page at / and a fresh frame per connection at /ws.
func newMux(opts *options, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", &stream.Handler{
		NewRenderer:    opts.Renderer,
		OriginPatterns: origins,
	})
	mux.Handle("/", stream.Page())
	return mux
}

func serve(ctx context.Context, addr string, origins []string, opts *options) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newMux(opts, origins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		frame.Logger().Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
