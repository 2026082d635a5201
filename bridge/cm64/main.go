// Command cm64 runs the CM64 MCP bridge.
//
// MCP clients launch it as a stdio server:
//
//	{"command": "cm64", "env": {"CM64_TOKEN": "<personal-access-token>"}}
//
// Standard output carries JSON-RPC only; help and errors go to standard error.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cm64io/mcp/bridge"
)

func main() {
	if err := bridge.Run(os.Args[1:]); err != nil {
		if bridge.IsHelp(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(0)
		}
		log.Fatal(err)
	}
}
