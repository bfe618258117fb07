package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

// ListFilesInput is the input schema for the list_files tool.
type ListFilesInput struct{}

// ListFilesOutput is the output schema for the list_files tool.
type ListFilesOutput struct {
	Files []FileOutput `json:"files"`
	Count int          `json:"count"`
}

// FileOutput describes one parsed file.
type FileOutput struct {
	Name     string `json:"name"`
	Alias    string `json:"alias,omitempty"`
	Checksum string `json:"checksum,omitempty"`
	ParsedAt string `json:"parsed_at"`
}

// GetOutlineInput is the input schema for the get_outline tool.
type GetOutlineInput struct {
	File     string `json:"file" jsonschema:"the file name as listed by list_files"`
	MaxDepth int    `json:"max_depth,omitempty" jsonschema:"deepest heading level to include (default all)"`
	Todo     string `json:"todo,omitempty" jsonschema:"only include headings with this todo keyword"`
}

// GetOutlineOutput is the output schema for the get_outline tool.
type GetOutlineOutput struct {
	File  string       `json:"file"`
	Nodes []NodeOutput `json:"nodes"`
	Count int          `json:"count"`
}

// NodeOutput is one heading in document order.
type NodeOutput struct {
	Depth         int      `json:"depth"`
	Title         string   `json:"title"`
	Todo          string   `json:"todo,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	InheritedTags []string `json:"inherited_tags,omitempty"`
	Scheduled     string   `json:"scheduled,omitempty"`
	Deadline      string   `json:"deadline,omitempty"`
	Payload       string   `json:"payload,omitempty"`
}

// SyncDirInput is the input schema for the sync_dir tool.
type SyncDirInput struct {
	Dir string `json:"dir" jsonschema:"the staging directory holding index.org"`
}

// SearchNodesInput is the input schema for the search_nodes tool.
type SearchNodesInput struct {
	Query  string   `json:"query,omitempty" jsonschema:"text matched against heading titles and payloads"`
	Todo   string   `json:"todo,omitempty" jsonschema:"only headings with this todo keyword"`
	Tag    string   `json:"tag,omitempty" jsonschema:"only headings carrying this tag, own or inherited"`
	Files  []string `json:"files,omitempty" jsonschema:"restrict the search to these file names"`
	Limit  int      `json:"limit,omitempty" jsonschema:"maximum number of results (default 20)"`
	Offset int      `json:"offset,omitempty" jsonschema:"number of results to skip, for paging"`
}

// SearchNodesOutput is the output schema for the search_nodes tool.
type SearchNodesOutput struct {
	Results []SearchHitOutput `json:"results"`
	Count   int               `json:"count"`
}

// SearchHitOutput is one matching heading.
type SearchHitOutput struct {
	File       string   `json:"file"`
	Path       []string `json:"path,omitempty"`
	Title      string   `json:"title"`
	Todo       string   `json:"todo,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Score      float64  `json:"score"`
	Highlights []string `json:"highlights,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_files",
		Description: "List parsed outline files",
	}, s.handleListFiles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_outline",
		Description: "Return the headings of a parsed outline file in document order",
	}, s.handleGetOutline)

	if s.ports.Search != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_nodes",
			Description: "Search headings across parsed files by text, todo keyword or tag",
		}, s.handleSearchNodes)
	}

	if s.ports.Sync != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "sync_dir",
			Description: "Reparse the changed files of a MobileOrg staging directory",
		}, s.handleSyncDir)
	}
}

func (s *Server) handleListFiles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListFilesInput,
) (*mcp.CallToolResult, ListFilesOutput, error) {
	files, err := s.ports.Outline.ListFiles(ctx)
	if err != nil {
		return nil, ListFilesOutput{}, err
	}

	output := ListFilesOutput{
		Files: make([]FileOutput, len(files)),
		Count: len(files),
	}
	for i := range files {
		output.Files[i] = FileOutput{
			Name:     files[i].Name,
			Alias:    files[i].Alias,
			Checksum: files[i].Checksum,
			ParsedAt: files[i].ParsedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	return nil, output, nil
}

func (s *Server) handleGetOutline(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetOutlineInput,
) (*mcp.CallToolResult, GetOutlineOutput, error) {
	outline, err := s.ports.Outline.Get(ctx, input.File)
	if err != nil {
		return nil, GetOutlineOutput{}, err
	}

	output := GetOutlineOutput{File: outline.File.Name, Nodes: []NodeOutput{}}
	outline.Root.Walk(func(n *driving.OutlineNode, _ int) {
		if n.Node.Depth == 0 {
			return
		}
		if input.MaxDepth > 0 && n.Node.Depth > input.MaxDepth {
			return
		}
		if input.Todo != "" && n.Node.Todo != input.Todo {
			return
		}
		output.Nodes = append(output.Nodes, nodeOutput(n))
	})
	output.Count = len(output.Nodes)

	return nil, output, nil
}

func (s *Server) handleSearchNodes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchNodesInput,
) (*mcp.CallToolResult, SearchNodesOutput, error) {
	results, err := s.ports.Search.Search(ctx, input.Query, domain.SearchOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
		Files:  input.Files,
		Todo:   input.Todo,
		Tag:    input.Tag,
	})
	if err != nil {
		return nil, SearchNodesOutput{}, err
	}

	output := SearchNodesOutput{
		Results: make([]SearchHitOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		r := &results[i]
		output.Results[i] = SearchHitOutput{
			File:       r.File,
			Path:       r.Path,
			Title:      r.Node.Title,
			Todo:       r.Node.Todo,
			Tags:       r.Node.TagList(),
			Score:      r.Score,
			Highlights: r.Highlights,
		}
	}

	return nil, output, nil
}

func (s *Server) handleSyncDir(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SyncDirInput,
) (*mcp.CallToolResult, driving.SyncReport, error) {
	report, err := s.ports.Sync.SyncDir(ctx, input.Dir)
	if err != nil {
		return nil, driving.SyncReport{}, err
	}
	return nil, *report, nil
}

func nodeOutput(n *driving.OutlineNode) NodeOutput {
	return NodeOutput{
		Depth:         n.Node.Depth,
		Title:         n.Node.Title,
		Todo:          n.Node.Todo,
		Priority:      n.Node.Priority,
		Tags:          n.Node.TagList(),
		InheritedTags: n.Node.InheritedTagList(),
		Scheduled:     n.Timestamps[domain.TimestampScheduled],
		Deadline:      n.Timestamps[domain.TimestampDeadline],
		Payload:       strings.TrimRight(n.Payload, "\n"),
	}
}
