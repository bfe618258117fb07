package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

const (
	// uriScheme is the custom URI scheme for orgsync resources.
	uriScheme = "orgsync://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "files",
		Name:        "files",
		Description: "List of parsed outline files",
		MIMEType:    "application/json",
	}, s.handleFilesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "files/{name}",
		Name:        "file-outline",
		Description: "A parsed outline rendered back to org text",
		MIMEType:    "text/org",
	}, s.handleFileResource)
}

// handleFilesResource returns the parsed files as JSON.
func (s *Server) handleFilesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	_, output, err := s.handleListFiles(ctx, nil, ListFilesInput{})
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	data, err := json.MarshalIndent(output.Files, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling files: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleFileResource renders one outline as org text.
func (s *Server) handleFileResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractFileName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	outline, err := s.ports.Outline.Get(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("loading outline: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/org",
			Text:     renderOrg(outline),
		}},
	}, nil
}

// extractFileName extracts the file name from a URI like orgsync://files/{name}.
// Names may contain slashes.
func extractFileName(uri string) string {
	const prefix = uriScheme + "files/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}

// renderOrg writes the outline back as heading lines and payloads.
// Excluded tags and inherited tags are not reconstructed.
func renderOrg(outline *driving.Outline) string {
	var b strings.Builder
	outline.Root.Walk(func(n *driving.OutlineNode, _ int) {
		if n.Node.Depth > 0 {
			b.WriteString(strings.Repeat("*", n.Node.Depth))
			if n.Node.Todo != "" {
				b.WriteString(" " + n.Node.Todo)
			}
			if n.Node.Priority != "" {
				b.WriteString(" [#" + n.Node.Priority + "]")
			}
			if n.Node.Title != "" {
				b.WriteString(" " + n.Node.Title)
			}
			if n.Node.Tags != "" {
				b.WriteString(" :" + n.Node.Tags + ":")
			}
			b.WriteByte('\n')
		}
		b.WriteString(n.Payload)
	})
	return b.String()
}
