package main

import (
	"fmt"
	"os"

	"github.com/apispect/apispect"
	"github.com/apispect/apispect/cmd/apispect/commands"
)

// commandNames lists every subcommand, used for typo suggestions.
var commandNames = []string{
	"parse",
	"endpoints",
	"params",
	"body",
	"generate",
	"security",
	"mcp",
	"version",
	"help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("apispect v%s\n", apispect.Version())
	case "help", "-h", "--help":
		printUsage()
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "endpoints":
		if err := commands.HandleEndpoints(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "params":
		if err := commands.HandleParams(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "body":
		if err := commands.HandleBody(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "generate":
		if err := commands.HandleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "security":
		if err := commands.HandleSecurity(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or the empty string when nothing is close enough to suggest.
func suggestCommand(input string) string {
	const maxDistance = 2
	best := ""
	bestDist := maxDistance + 1
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	if bestDist > maxDistance {
		return ""
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`apispect - API descriptor inspection tools

Usage:
  apispect <command> [options]

Commands:
  parse       Parse an API descriptor and report its structure
  endpoints   List every endpoint declared in a descriptor
  params      Resolve the effective parameters of one operation
  body        Describe the request body of one operation
  generate    Generate TypeScript interfaces and a client
  security    Audit operation-level security declarations
  mcp         Serve apispect tools over the Model Context Protocol
  version     Show version information
  help        Show this help message

Examples:
  apispect parse api.yaml
  apispect endpoints --method get api.yaml
  apispect params --path /users/{id} --method get api.yaml
  apispect body --path /users --method post api.yaml
  apispect generate -o ./gen api.yaml
  apispect security --format json api.yaml
  apispect mcp

Run 'apispect <command> --help' for more information on a command.`)
}
