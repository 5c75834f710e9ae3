// Package server exposes the registry lookups over HTTP for remote
// debug session frontends.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/dapreg/dapreg/api/dap"
	"github.com/dapreg/dapreg/internal/launcher"
	"github.com/dapreg/dapreg/internal/registry"
	"github.com/dapreg/dapreg/pkg/log"
)

type Server struct {
	service    string
	listenAddr string
	reg        *registry.Registry
}

func New(service, listenAddr string, reg *registry.Registry) *Server {
	return &Server{
		service:    service,
		listenAddr: listenAddr,
		reg:        reg,
	}
}

// Router builds the route table. Split out of Run so handler tests
// can drive it directly.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/adapters", s.listAdapters).Methods(http.MethodGet)
	router.HandleFunc("/api/adapters/{name}", s.getAdapter).Methods(http.MethodGet)
	router.HandleFunc("/api/languages", s.listLanguages).Methods(http.MethodGet)
	router.HandleFunc("/api/languages/{language}/configs", s.listConfigs).Methods(http.MethodGet)
	router.HandleFunc("/api/languages/{language}/configs/{name}/plan", s.buildPlan).Methods(http.MethodPost)
	router.Use(otelmux.Middleware(s.service))
	router.Use(accessLog)
	return router
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.AccessLog.Infof("%s %s %s", r.RemoteAddr, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Create http metrics middleware.
	// ref: https://github.com/slok/go-http-metrics
	httpMetricMiddleware := middleware.New(middleware.Config{
		Recorder: prometheus.NewRecorder(prometheus.Config{
			Prefix: "dapreg_",
		}),
		Service:                s.service,
		GroupedStatus:          false,
		DisableMeasureSize:     false,
		DisableMeasureInflight: false,
	})
	// Empty handler ID lets the middleware infer the handler label
	// from the URL.
	h := std.Handler("", httpMetricMiddleware, s.Router())

	srv := &http.Server{
		Addr:    s.listenAddr,
		Handler: h,
	}
	go func() {
		<-ctx.Done()
		log.Infof("Shutting down the http server")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Errorf("Failed to shutdown http server: %v", err)
		}
	}()
	log.Infof("Starting listening at %s", s.listenAddr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Errorf("Failed to listen and serve: %v", err)
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) listAdapters(w http.ResponseWriter, r *http.Request) {
	out := map[string]dap.AdapterDescriptor{}
	for _, name := range s.reg.AdapterNames() {
		d, _ := s.reg.Adapter(name)
		out[name] = d
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getAdapter(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	d, ok := s.reg.Adapter(name)
	if !ok {
		writeError(w, http.StatusNotFound, "adapter not registered: "+name)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) listLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.reg.Languages())
}

// listConfigs answers an empty list for an unknown language; the
// frontend decides whether that is worth telling the user.
func (s *Server) listConfigs(w http.ResponseWriter, r *http.Request) {
	language := mux.Vars(r)["language"]
	writeJSON(w, http.StatusOK, s.reg.LaunchConfigs(language))
}

func (s *Server) buildPlan(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	plan, err := launcher.BuildPlan(s.reg, vars["language"], vars["name"])
	if err != nil {
		var re *dap.ResolutionError
		if errors.As(err, &re) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, plan)
}
