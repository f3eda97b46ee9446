package cmd

import (
	"Ballast/internal/auth"
	"Ballast/internal/calc/buoyancy"
	"Ballast/internal/calc/loads"
	"Ballast/internal/calc/member"
	"Ballast/internal/calc/premium/autodesign"
	"Ballast/internal/calc/premium/batch"
	"Ballast/internal/calc/premium/importer"
	"Ballast/internal/calc/premium/recommend"
	"Ballast/internal/calc/report"
	"Ballast/internal/calc/uplift"
	"Ballast/internal/config"
	"Ballast/internal/diagram"
	"Ballast/internal/platform/logger"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API. Settings come from the environment or a .env file:
ADDR, APP_ENV, TLS_CERT, TLS_KEY, RATE_LIMIT, RATE_BURST, REPORT_KEY,
REPORT_LINK_TTL, ACCESS_HASH, PUBLIC_URL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.Env)
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return serve(ctx, cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, cfg config.Config, log *logger.Logger) {
	mux.Use(log.Middleware)

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	}).Methods("GET")

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	gate := auth.Gate{Hash: cfg.AccessHash}

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	// Signed links carry their own authorisation and skip the gate.
	reportH := &report.Handler{Links: report.NewSigner(cfg.ReportKey, cfg.ReportLinkTTL), PublicURL: cfg.PublicURL}
	api.HandleFunc("/tools/report/pdf/{token}", reportH.Shared).Methods("GET")

	secureApi := api.NewRoute().Subrouter()
	secureApi.Use(gate.Middleware)

	buoyancyH := &buoyancy.Handler{}
	loadsH := &loads.Handler{}
	memberH := &member.Handler{}
	upliftH := &uplift.Handler{}
	diagramH := &diagram.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	autoH := &autodesign.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tools/buoyancy/defaults", buoyancyH.Defaults).Methods("GET")
	secureApi.HandleFunc("/tools/buoyancy/calc", buoyancyH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/loads/calc", loadsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/member/calc", memberH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/uplift/calc", upliftH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.PDF).Methods("POST")
	secureApi.HandleFunc("/tools/report/xlsx", reportH.XLSX).Methods("POST")
	secureApi.HandleFunc("/tools/report/link", reportH.Link).Methods("POST")
	secureApi.HandleFunc("/tools/diagram", diagramH.Render).Methods("POST")

	secureApi.HandleFunc("/premium/buoyancy/sweep", batchH.Sweep).Methods("POST")
	secureApi.HandleFunc("/premium/buoyancy/batch", batchH.Batch).Methods("POST")
	secureApi.HandleFunc("/premium/import/levels", importerH.Levels).Methods("POST")
	secureApi.HandleFunc("/premium/design/bottom-slab", autoH.BottomSlab).Methods("POST")
	secureApi.HandleFunc("/premium/recommend/dewatering", recommendH.Dewatering).Methods("POST")
}

// NewHandler builds the full HTTP stack.
func NewHandler(cfg config.Config, log *logger.Logger) http.Handler {
	router := mux.NewRouter()
	HandleList(router, cfg, log)
	return CORS(router)
}

func serve(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           NewHandler(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if len(cfg.ReportKey) == 0 {
		log.Warn("REPORT_KEY not set, report links are disabled")
	}
	if cfg.AccessHash == "" {
		log.Warn("ACCESS_HASH not set, the API is open")
	}

	var wg sync.WaitGroup
	errCh := make(chan error, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("starting server", "addr", cfg.Addr, "tls", cfg.TLS(), "env", cfg.Env)
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		wg.Wait()
		return err
	case <-ctx.Done():
	}
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	wg.Wait()
	log.Info("server stopped")
	return nil
}
