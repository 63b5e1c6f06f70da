package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/apispect/apispect/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: apispect mcp\n\n")
		Writef(output, "Run the Model Context Protocol server over stdio. The server exposes\n")
		Writef(output, "descriptor inspection and generation tools to MCP clients and blocks\n")
		Writef(output, "until the client disconnects.\n\n")
		Writef(output, "Environment:\n")
		Writef(output, "  APISPECT_CACHE_ENABLED     enable descriptor caching (default true)\n")
		Writef(output, "  APISPECT_CACHE_FILE_TTL    cache TTL for local file descriptors (default 15m)\n")
		Writef(output, "  APISPECT_CACHE_URL_TTL     cache TTL for URL-fetched descriptors (default 5m)\n")
		Writef(output, "  APISPECT_MAX_INLINE_SIZE   maximum inline content size in bytes\n")
		Writef(output, "  APISPECT_ALLOW_PRIVATE_IPS allow URL fetches to private addresses\n")
		Writef(output, "\nExample client configuration (Claude Desktop, Cursor, etc.):\n")
		Writef(output, "  {\"mcpServers\": {\"apispect\": {\"command\": \"apispect\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
