// Package api defines the JSON wire types served to the website frontend.
package api

import (
	"github.com/griffedoc/griffedoc/internal/docs"
	"github.com/griffedoc/griffedoc/internal/index"
	"github.com/griffedoc/griffedoc/internal/search"
)

// PackagesResponse is the response body for GET /api/packages.
type PackagesResponse struct {
	Packages []PackageInfo `json:"packages"`
}

type PackageInfo struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// NavigationResponse is the response body for GET /api/navigation.
type NavigationResponse struct {
	Navigation []docs.NavEntry `json:"navigation"`
}

// PagesResponse is the response body for GET /api/pages.
type PagesResponse struct {
	Pages []index.Page `json:"pages"`
}

// SearchResponse is the response body for GET /api/search.
type SearchResponse struct {
	Query   string          `json:"query"`
	Results []search.Result `json:"results"`
}

// DocResponse is the response body for GET /api/doc/{package}/{path...}.
type DocResponse struct {
	Package  string   `json:"package"`
	Path     []string `json:"path"`
	Title    string   `json:"title"`
	Markdown string   `json:"markdown"`
	HTML     string   `json:"html"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
