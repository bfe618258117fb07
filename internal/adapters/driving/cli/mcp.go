package cli

import (
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgsync/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose outlines to MCP clients",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Serve the parsed outlines over the Model Context Protocol. Clients can
list files, read and search outlines, and ask for a directory sync.

stdio is used unless --port is given, in which case the streamable HTTP
transport is mounted at /mcp with a liveness probe at /healthz.

Examples:
  orgsync mcp serve
  orgsync mcp serve --port 8080
  orgsync mcp serve --host 0.0.0.0 --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

var (
	mcpPort int
	mcpHost string
)

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 serves stdio)")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "HTTP bind address")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{
		Outline: outlineService,
		Search:  searchService,
		Sync:    syncService,
	})
	if err != nil {
		return err
	}

	if mcpPort <= 0 {
		return server.Run(cmd.Context())
	}

	addr := net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort))
	cmd.Printf("MCP server listening on http://%s%s\n", addr, mcp.Endpoint)
	return server.RunHTTP(cmd.Context(), addr)
}
