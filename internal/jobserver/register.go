// Package jobserver wires the job-tracking tools onto an MCP server:
// posting capture, manual pay parsing, application tracker CRUD, and
// apijobs.dev enrichment.
package jobserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all go_hunter tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerPostingCapture(server)
	registerPayParse(server)
	registerApplicationAdd(server)
	registerApplicationList(server)
	registerApplicationUpdate(server)
	registerApplicationDelete(server)
	registerJobEnrich(server)
}
