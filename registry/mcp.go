package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/toolcatalog/discovery"
)

// ServerInfo identifies the MCP server to clients.
type ServerInfo struct {
	Name    string
	Version string
}

// MCP tool names exposed by NewMCPServer.
const (
	ToolListCategories = "list_categories"
	ToolListTools      = "list_tools"
	ToolResolve        = "resolve_tool"
	ToolSearch         = "search_tools"
	ToolStats          = "catalog_stats"
)

type listCategoriesArgs struct{}

type listToolsArgs struct {
	Category        string `json:"category" jsonschema:"category id, e.g. quick-tools"`
	IncludeDisabled bool   `json:"includeDisabled,omitempty" jsonschema:"also list disabled tools"`
}

type resolveArgs struct {
	Category string `json:"category" jsonschema:"category id from the page URL"`
	Slug     string `json:"slug" jsonschema:"tool slug from the page URL"`
}

type searchArgs struct {
	Query    string `json:"query" jsonschema:"free text query; empty lists every visible tool"`
	Category string `json:"category,omitempty" jsonschema:"restrict results to one category; empty or all means every category"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of results; 0 means no limit"`
}

type statsArgs struct{}

// NewMCPServer exposes the registry's read operations as MCP tools. Every
// call reads the live index, so reloads are visible without reconnecting.
func NewMCPServer(reg *Registry, info ServerInfo, opts discovery.Options) *mcp.Server {
	if info.Name == "" {
		info.Name = "toolcatalog"
	}
	disc := discovery.New(reg, opts)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    info.Name,
		Version: info.Version,
	}, &mcp.ServerOptions{
		HasTools: true,
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolListCategories,
		Description: "List enabled tool categories in display order with their visible tool counts.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ listCategoriesArgs) (*mcp.CallToolResult, any, error) {
		return jsonResult(disc.Categories())
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolListTools,
		Description: "List the tools of one category in declared order.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listToolsArgs) (*mcp.CallToolResult, any, error) {
		return jsonResult(disc.ListPage(args.Category, args.IncludeDisabled))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolResolve,
		Description: "Resolve a tool page by category and slug. found=false means the page does not exist.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args resolveArgs) (*mcp.CallToolResult, any, error) {
		return jsonResult(disc.Route(args.Category, args.Slug))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolSearch,
		Description: "Search visible tools by name, slug, tags and description.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args searchArgs) (*mcp.CallToolResult, any, error) {
		if args.Limit < 0 {
			return errorResult(fmt.Errorf("limit must not be negative, got %d", args.Limit))
		}
		return jsonResult(disc.SearchPage(args.Query, args.Category).Limit(args.Limit))
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolStats,
		Description: "Report the live catalog version, fingerprint, counts and reload history.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, _ statsArgs) (*mcp.CallToolResult, any, error) {
		return jsonResult(reg.Stats())
	})

	return server
}

// ServeStdio runs an MCP server over stdin/stdout until ctx is done or the
// client disconnects.
func ServeStdio(ctx context.Context, reg *Registry, info ServerInfo, opts discovery.Options) error {
	return NewMCPServer(reg, info, opts).Run(ctx, &mcp.StdioTransport{})
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}

func errorResult(err error) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}, nil, nil
}
