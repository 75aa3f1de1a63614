// Package mcp exposes the documentation corpus to agent tooling over the
// Model Context Protocol: search, page rendering, and page enumeration as
// tools, plus pydoc:// resource URIs.
package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/griffedoc/griffedoc/internal/docs"
	"github.com/griffedoc/griffedoc/internal/index"
	"github.com/griffedoc/griffedoc/internal/render"
	"github.com/griffedoc/griffedoc/internal/search"
)

//go:embed instructions.md
var instructions string

const uriScheme = "pydoc://"

type Server struct {
	mcpServer *server.MCPServer
	store     *docs.Store
	searcher  *search.Searcher
}

func NewServer(store *docs.Store, searcher *search.Searcher) *Server {
	s := &Server{store: store, searcher: searcher}

	mcpServer := server.NewMCPServer(
		"griffedoc",
		"0.1.0",
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	s.registerTools(mcpServer)
	s.registerResources(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("search_docs",
			mcp.WithDescription("Fuzzy search across the loaded API documentation. Matches record names (weighted double) and summaries. Returns pydoc:// URIs readable as resources."),
			mcp.WithString("query",
				mcp.Description("Search query (at least 2 characters)"),
				mcp.Required(),
			),
			mcp.WithString("package",
				mcp.Description("Optional package name to search within"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results (default 20)"),
			),
		),
		s.handleSearchDocs,
	)

	mcpServer.AddTool(
		mcp.NewTool("get_doc",
			mcp.WithDescription("Render one documentation page as markdown. The path is the slash-joined submodule chain; omit it for the package root."),
			mcp.WithString("package",
				mcp.Description("Package name (e.g. \"cfabric\")"),
				mcp.Required(),
			),
			mcp.WithString("path",
				mcp.Description("Slash-joined submodule path (e.g. \"layers/dense\")"),
			),
		),
		s.handleGetDoc,
	)

	mcpServer.AddTool(
		mcp.NewTool("list_pages",
			mcp.WithDescription("Enumerate every addressable documentation page, one per module."),
			mcp.WithString("package",
				mcp.Description("Optional package name to filter by"),
			),
		),
		s.handleListPages,
	)
}

func (s *Server) registerResources(mcpServer *server.MCPServer) {
	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			uriScheme+"{package}/{path}",
			"API documentation page",
			mcp.WithTemplateDescription("Read a rendered documentation page. Search results return these URIs."),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		s.handleReadResource,
	)
}

type searchHit struct {
	URI     string `json:"uri"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Package string `json:"package"`
	Summary string `json:"summary,omitempty"`
	Score   int    `json:"score"`
}

func (s *Server) handleSearchDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	if query == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}
	pkg, _ := args["package"].(string)
	limit := 0
	if raw, ok := args["limit"].(float64); ok {
		limit = int(raw)
	}

	results := s.searcher.Search(query, pkg, limit)
	hits := make([]searchHit, len(results))
	for i, r := range results {
		hits[i] = searchHit{
			// Record paths start with "/<package>", so prefixing the bare
			// scheme yields pydoc://<package>/...
			URI:     "pydoc:/" + r.Path,
			Type:    string(r.Type),
			Name:    r.Name,
			Package: r.Package,
			Summary: r.Summary,
			Score:   r.Score,
		}
	}

	resultJSON, _ := json.MarshalIndent(hits, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleGetDoc(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	pkg, _ := args["package"].(string)
	if pkg == "" {
		return mcp.NewToolResultError("missing required parameter: package"), nil
	}
	rawPath, _ := args["path"].(string)

	markdown, ok := s.renderPage(pkg, rawPath)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("page not found: %s/%s", pkg, rawPath)), nil
	}
	return mcp.NewToolResultText(markdown), nil
}

func (s *Server) handleListPages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pkg, _ := req.GetArguments()["package"].(string)

	var pages []index.Page
	for _, p := range index.AllPages(s.store) {
		if pkg != "" && p.Package != pkg {
			continue
		}
		pages = append(pages, p)
	}

	resultJSON, _ := json.MarshalIndent(pages, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleReadResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	trimmed := strings.TrimPrefix(uri, uriScheme)

	// Fragments address anchors within a page; the page itself is the unit
	// of retrieval.
	if idx := strings.LastIndex(trimmed, "#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	pkg, rawPath, _ := strings.Cut(trimmed, "/")
	if pkg == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", uri)
	}

	markdown, ok := s.renderPage(pkg, rawPath)
	if !ok {
		return nil, fmt.Errorf("page not found: %s", uri)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     markdown,
		},
	}, nil
}

func (s *Server) renderPage(pkg, rawPath string) (string, bool) {
	var path []string
	if rawPath != "" {
		path = strings.Split(rawPath, "/")
	}
	mod, ok := index.Lookup(s.store, pkg, path)
	if !ok {
		return "", false
	}
	return render.ModulePage(pkg, path, mod), true
}

func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
