package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"clearscene/internal/application/commands"
	"clearscene/internal/domain"
	"clearscene/internal/ports"
)

// RegisterReadTools adds the read-only catalog tools to the MCP server.
// There are no write tools: reclassifying a scene is a human judgement,
// made in the review TUI or the file manager.
func RegisterReadTools(s *server.MCPServer, repo ports.CatalogRepository) {
	s.AddTool(tilesTool(), tilesHandler(repo))
	s.AddTool(countTool(), countHandler(repo))
	s.AddTool(listTool(), listHandler(repo))
	s.AddTool(normalizeTool(), normalizeHandler())
}

// --- catalog_tiles ---

func tilesTool() mcp.Tool {
	return mcp.NewTool("catalog_tiles",
		mcp.WithDescription("List the WRS2 tiles in the quicklook catalog and the years each covers."),
	)
}

func tilesHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tiles, err := repo.ListTiles()
		if err != nil {
			return toolError(err)
		}
		if len(tiles) == 0 {
			return mcp.NewToolResultText("No tiles in catalog."), nil
		}

		var sb strings.Builder
		for _, tile := range tiles {
			years, err := repo.ListYears(tile)
			if err != nil {
				return toolError(err)
			}
			fmt.Fprintf(&sb, "%s:", tile)
			for _, y := range years {
				fmt.Fprintf(&sb, " %d", y)
			}
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- count_scenes ---

func countTool() mcp.Tool {
	return mcp.NewTool("count_scenes",
		mcp.WithDescription("Count clear scenes per tile/year/month from the current folder state. Returns the monthly count table as CSV."),
		mcp.WithString("wrs2",
			mcp.Description("Comma separated WRS2 tiles to include (e.g. p043r032,p043r033). Omit for all tiles."),
		),
		mcp.WithString("years",
			mcp.Description(`Comma separated years or ranges to include (e.g. "1984,2000-2015"). Omit for all years.`),
		),
	)
}

func countHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCountScenesCommand(repo, domain.IDEncodingShort)

		if wrs2 := req.GetString("wrs2", ""); wrs2 != "" {
			tiles, err := domain.ParseTileList([]string{wrs2})
			if err != nil {
				return toolError(err)
			}
			cmd.Tiles = tiles
		}
		if years := req.GetString("years", ""); years != "" {
			ys, err := domain.ParseYearSet([]string{years})
			if err != nil {
				return toolError(err)
			}
			cmd.Years = ys
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		sb.WriteString(domain.CountTableHeader)
		sb.WriteByte('\n')
		for _, row := range result.Counts.Rows() {
			sb.WriteString(row.CSV())
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_scenes ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_scenes",
		mcp.WithDescription("List clear or cloudy scene identifiers, sorted by tile and acquisition date."),
		mcp.WithString("classification",
			mcp.Description("Which list to return: clear or cloudy."),
			mcp.Required(),
		),
	)
}

func listHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var want domain.Classification
		switch strings.ToLower(req.GetString("classification", "")) {
		case "clear":
			want = domain.Clear
		case "cloudy":
			want = domain.Cloudy
		default:
			return toolError(fmt.Errorf("classification must be clear or cloudy"))
		}

		result, err := commands.NewCountScenesCommand(repo, domain.IDEncodingShort).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		ids := result.Clear
		if want == domain.Cloudy {
			ids = result.Cloudy
		}
		if len(ids) == 0 {
			return mcp.NewToolResultText("No scenes."), nil
		}
		return mcp.NewToolResultText(strings.Join(ids, "\n") + "\n"), nil
	}
}

// --- normalize_id ---

func normalizeTool() mcp.Tool {
	return mcp.NewTool("normalize_id",
		mcp.WithDescription("Normalize a scene identifier (product, short, or legacy encoding) to its canonical sensor/tile/date identity."),
		mcp.WithString("identifier",
			mcp.Description("Scene identifier token"),
			mcp.Required(),
		),
	)
}

func normalizeHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		token := req.GetString("identifier", "")
		if token == "" {
			return toolError(fmt.Errorf("identifier is required"))
		}

		result, err := commands.NewNormalizeCommand(token, domain.IDEncodingShort).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("sensor=%s tile=%s date=%s id=%s\n",
			result.Sensor, result.Tile, result.Date, result.Encoded)), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
