package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/petal-labs/visionary/cli/logging"
	"github.com/petal-labs/visionary/studio"
	"github.com/petal-labs/visionary/web"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func (a *App) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser studio",
		Long: `Serve the browser studio until interrupted.

The gallery lives in memory and is lost when the server stops.

Examples:
  visionary serve
  visionary serve --addr :9000`,
		RunE: a.runServe,
	}

	cmd.Flags().StringVar(&a.serveAddr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")

	return cmd
}

func (a *App) runServe(cmd *cobra.Command, args []string) error {
	log := logging.FromContextOrDiscard(cmd.Context())

	addr := a.serveAddr
	if addr == "" {
		addr = a.cfg.Server.Addr
	}

	gen, err := a.generator()
	if err != nil {
		return a.fail(ExitValidation, err)
	}
	session := studio.New(gen, studio.WithLogger(log))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return a.fail(ExitNetwork, fmt.Errorf("listen %s: %w", addr, err))
	}

	srv := &http.Server{
		Handler:           web.NewServer(session, log),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return logging.NewContext(context.Background(), log)
		},
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	fmt.Fprintf(a.stdout, "Serving Visionary on http://%s\n", ln.Addr())
	log.Info("serving", "addr", ln.Addr().String())
	if a.listening != nil {
		a.listening(ln.Addr())
	}

	if err := g.Wait(); err != nil {
		return a.fail(ExitNetwork, err)
	}
	return nil
}
