package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/gridastar/internal/report"
	"github.com/pdrpinto/gridastar/internal/scenario"
)

const maxScenarioBytes = 1 << 20

var (
	serveAddr            string
	serveShutdownTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve searches over HTTP",
	Long: `Serve searches over HTTP.

  POST /search          scenario document (YAML or JSON) in the body
  POST /search?cells=1  same, with per-cell scores in the report
  GET  /healthz`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ln, err := net.Listen("tcp", serveAddr)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), ln, logger, serveShutdownTimeout)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().DurationVar(&serveShutdownTimeout, "shutdown-timeout", 5*time.Second, "grace period for in-flight requests")
}

// serve runs the HTTP server on ln until ctx is cancelled.
func serve(ctx context.Context, ln net.Listener, log *zap.Logger, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           newHandler(log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Serving searches", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("Shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newHandler(log *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /search", func(w http.ResponseWriter, r *http.Request) {
		handleSearch(w, r, log)
	})
	return mux
}

func handleSearch(w http.ResponseWriter, r *http.Request, log *zap.Logger) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)
	log = log.With(zap.String("requestId", requestID))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxScenarioBytes))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, err.Error(), status)
		return
	}
	sc, err := scenario.Parse(body)
	if err != nil {
		log.Debug("Bad scenario", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	includeCells, _ := strconv.ParseBool(r.URL.Query().Get("cells"))
	rep := searchScenario(sc, log, report.Options{IncludeCells: includeCells})
	status := http.StatusOK
	if rep.Error != "" {
		status = http.StatusUnprocessableEntity
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(rep)
}
