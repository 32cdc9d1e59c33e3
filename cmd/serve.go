package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/city-rec/dropin-cli/internal/dataset"
	"github.com/city-rec/dropin-cli/internal/engine"
	"github.com/city-rec/dropin-cli/internal/taxonomy"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search engine as a JSON API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type apiServer struct {
	engine *engine.Engine
	store  *dataset.Store
	loader *dataset.Loader
	src    dataset.Sources
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	table, err := loadTable()
	if err != nil {
		return err
	}
	snap, err := loadSnapshot(ctx)
	if err != nil {
		return err
	}

	srv := &apiServer{
		engine: engine.New(table),
		store:  dataset.NewStore(snap),
		loader: newLoader(),
		src: dataset.Sources{
			Sessions:   cfg.Data.SessionsSource,
			Locations:  cfg.Data.LocationsSource,
			Facilities: cfg.Data.FacilitiesSource,
		},
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", srv.handleHealth)
	r.Get("/api/search", srv.handleSearch)
	r.Get("/api/categories", srv.handleCategories)
	r.Get("/api/locations", srv.handleLocations)
	r.Get("/api/classify", srv.handleClassify)
	r.Get("/api/titles", srv.handleTitles)
	r.Post("/api/reload", srv.handleReload)

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		zap.L().Info("api server listening", zap.Int("port", cfg.Server.Port))
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutCtx)
}

// requestID tags each request with a UUID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

type requestIDKey struct{}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		id, _ := r.Context().Value(requestIDKey{}).(string)
		zap.L().Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func (s *apiServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"sessions":  len(snap.Sessions),
		"loaded_at": snap.LoadedAt,
	})
}

func (s *apiServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	f, err := engine.DecodeQuery(r.URL.RawQuery)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad query string"})
		return
	}
	// Date and time are live parameters, never part of a shared filter.
	f.Date = r.URL.Query().Get("date")
	f.Time = r.URL.Query().Get("time")

	snap := s.store.Current()
	results := s.engine.Search(snap.Sessions, snap.Locations, snap.FacilityIndex, f)
	engine.Sort(results, engine.ParseOrder(r.URL.Query().Get("sort")))

	resp := map[string]interface{}{
		"count":   len(results),
		"results": results,
	}
	if r.URL.Query().Get("map") == "true" {
		resp["map_locations"] = engine.MapLocations(results, snap.Locations, snap.FacilityIndex, cfg.Display.City, cfg.Display.Province)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *apiServer) handleCategories(w http.ResponseWriter, r *http.Request) {
	table := s.engine.Table()
	if id := r.URL.Query().Get("category"); id != "" {
		cat := table.Category(id)
		if cat == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown category"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"category":      cat,
			"subcategories": table.Subcategories(id),
		})
		return
	}
	writeJSON(w, http.StatusOK, table.Categories())
}

func (s *apiServer) handleLocations(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	locs := snap.Locations
	if r.URL.Query().Get("all") != "true" {
		locs = engine.LocationsWithPrograms(snap.Sessions, snap.Locations)
	}
	writeJSON(w, http.StatusOK, locs)
}

func (s *apiServer) handleClassify(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "title is required"})
		return
	}
	ageMin := r.URL.Query().Get("age_min")
	ageMax := r.URL.Query().Get("age_max")

	table := s.engine.Table()
	writeJSON(w, http.StatusOK, struct {
		Title  string           `json:"title"`
		Labels []taxonomy.Label `json:"labels"`
		Icon   string           `json:"icon"`
	}{
		Title:  title,
		Labels: table.Classify(title, ageMin, ageMax),
		Icon:   table.IconFor(title, ageMin, ageMax),
	})
}

func (s *apiServer) handleTitles(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()
	titles := s.engine.TitleOptions(snap.Sessions, engine.Filter{
		Category:    r.URL.Query().Get("category"),
		Subcategory: r.URL.Query().Get("subcategory"),
	})
	writeJSON(w, http.StatusOK, titles)
}

// handleReload refetches all sources and swaps the snapshot atomically.
// In-flight requests keep the snapshot they started with.
func (s *apiServer) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.loader.Load(r.Context(), s.src)
	if err != nil {
		zap.L().Error("reload failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "reload failed"})
		return
	}
	s.store.Replace(snap)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "reloaded",
		"sessions": len(snap.Sessions),
	})
}
