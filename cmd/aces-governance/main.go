// aces-governance: ACES Governance MCP Server
//
// Serves the ACES standards, architecture, ADRs and repo templates to AI
// coding tools over MCP, and checks ACES repositories against them.
//
// Usage:
//
//	aces-governance serve                           # Start MCP server (stdio transport)
//	aces-governance check <repo> --type <t>         # Compliance report
//	aces-governance deps <project> [dependency...]  # Dependency direction
//
// MCP config:
//
//	{
//	  "mcpServers": {
//	    "aces-governance": {
//	      "command": "aces-governance",
//	      "args": ["serve"]
//	    }
//	  }
//	}
package main

import (
	"os"

	"github.com/aces-framework/aces-governance/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
