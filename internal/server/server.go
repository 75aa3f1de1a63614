// Package server exposes a loaded documentation corpus as a JSON HTTP API
// for the website frontend. The corpus itself is immutable; the only mutable
// state here is a cache of rendered pages, built once per page and shared by
// all readers.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/griffedoc/griffedoc/internal/api"
	"github.com/griffedoc/griffedoc/internal/docs"
	"github.com/griffedoc/griffedoc/internal/index"
	"github.com/griffedoc/griffedoc/internal/render"
	"github.com/griffedoc/griffedoc/internal/search"
)

var errNotFound = errors.New("not found")

type Server struct {
	store    *docs.Store
	searcher *search.Searcher
	pages    []index.Page
	addr     string

	httpServer *http.Server

	// Rendered markdown per page address, populated on first request.
	pageMu    sync.RWMutex
	pageCache map[string]string
	pageGroup singleflight.Group
}

// New builds a server over an already-loaded store. The search index derives
// from the store once, up front.
func New(store *docs.Store, searcher *search.Searcher, addr string) *Server {
	return &Server{
		store:     store,
		searcher:  searcher,
		pages:     index.AllPages(store),
		addr:      addr,
		pageCache: make(map[string]string),
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{Addr: s.addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("serving: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return <-errCh
	}
}

// Handler returns the HTTP handler without starting a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/packages", s.handlePackages)
	mux.HandleFunc("GET /api/navigation", s.handleNavigation)
	mux.HandleFunc("GET /api/pages", s.handlePages)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/doc/{package}", s.handleDoc)
	mux.HandleFunc("GET /api/doc/{package}/{path...}", s.handleDoc)
	return mux
}

func (s *Server) handlePackages(w http.ResponseWriter, r *http.Request) {
	var resp api.PackagesResponse
	for _, name := range s.store.Names() {
		info := api.PackageInfo{Name: name}
		if root, ok := s.store.Package(name); ok {
			info.Summary = root.Docstring.Summary
		}
		resp.Packages = append(resp.Packages, info)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNavigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.NavigationResponse{Navigation: s.store.Navigation()})
}

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.PagesResponse{Pages: s.pages})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}
	results := s.searcher.Search(query, q.Get("package"), limit)
	writeJSON(w, http.StatusOK, api.SearchResponse{Query: query, Results: results})
}

func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	pkg := r.PathValue("package")
	var path []string
	if raw := r.PathValue("path"); raw != "" {
		path = strings.Split(raw, "/")
	}

	markdown, ok := s.renderPage(pkg, path)
	if !ok {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}
	writeJSON(w, http.StatusOK, api.DocResponse{
		Package:  pkg,
		Path:     path,
		Title:    render.Title(pkg, path),
		Markdown: markdown,
		HTML:     string(render.HTML(markdown)),
	})
}

// renderPage resolves and renders one page, caching the markdown. Concurrent
// first requests for the same page collapse into a single render.
func (s *Server) renderPage(pkg string, path []string) (string, bool) {
	key := pkg + "/" + strings.Join(path, "/")

	s.pageMu.RLock()
	cached, ok := s.pageCache[key]
	s.pageMu.RUnlock()
	if ok {
		return cached, true
	}

	v, err, _ := s.pageGroup.Do(key, func() (any, error) {
		mod, ok := index.Lookup(s.store, pkg, path)
		if !ok {
			return nil, errNotFound
		}
		page := render.ModulePage(pkg, path, mod)
		s.pageMu.Lock()
		s.pageCache[key] = page
		s.pageMu.Unlock()
		return page, nil
	})
	if err != nil {
		return "", false
	}
	return v.(string), true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.ErrorResponse{Error: msg})
}
