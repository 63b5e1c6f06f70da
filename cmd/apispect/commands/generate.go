package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apispect/apispect"
	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/generator"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output           string
	ClientName       string
	TypesOnly        bool
	ClientOnly       bool
	DetectCollisions bool
	Strict           bool
	NoInfo           bool
	Quiet            bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output directory for generated files (required)")
	fs.StringVar(&flags.Output, "output", "", "output directory for generated files (required)")
	fs.StringVar(&flags.ClientName, "name", "ApiClient", "class name for the generated client")
	fs.BoolVar(&flags.TypesOnly, "types-only", false, "emit only the interface declarations")
	fs.BoolVar(&flags.ClientOnly, "client-only", false, "emit only the client class")
	fs.BoolVar(&flags.DetectCollisions, "detect-collisions", false, "report colliding client method names as warnings")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")
	fs.BoolVar(&flags.NoInfo, "no-info", false, "suppress informational generation messages")
	fs.BoolVar(&flags.Quiet, "q", false, "print only the written file paths")
	fs.BoolVar(&flags.Quiet, "quiet", false, "print only the written file paths")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: apispect generate [flags] -o <dir> <file|url|->\n\n")
		Writef(output, "Synthesize TypeScript artifacts from an API descriptor: interface\n")
		Writef(output, "declarations (types.ts) and a fetch-based client class (client.ts).\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  apispect generate -o ./gen api.yaml\n")
		Writef(output, "  apispect generate -o ./gen --name UsersClient api.yaml\n")
		Writef(output, "  apispect generate -o ./gen --types-only api.yaml\n")
		Writef(output, "  apispect generate -o ./gen --detect-collisions --strict api.yaml\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  Use '-' as the file path to read the descriptor from stdin.\n")
		Writef(output, "  Example: cat api.json | apispect generate -o ./gen -\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - --types-only and --client-only are mutually exclusive\n")
		Writef(output, "  - Structure findings are carried as errors but only --strict turns them fatal\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path, URL, or '-' for stdin")
	}
	specPath := fs.Arg(0)

	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output)")
	}
	if flags.TypesOnly && flags.ClientOnly {
		fs.Usage()
		return fmt.Errorf("--types-only and --client-only are mutually exclusive")
	}

	startTime := time.Now()
	var result *generator.GenerateResult
	var err error

	if specPath == StdinFilePath {
		p := descriptor.New()
		parsed, parseErr := p.ParseReader(os.Stdin)
		if parseErr != nil {
			return fmt.Errorf("parsing stdin: %w", parseErr)
		}
		g := generator.New()
		g.ClientName = flags.ClientName
		g.GenerateTypes = !flags.ClientOnly
		g.GenerateClient = !flags.TypesOnly
		g.DetectCollisions = flags.DetectCollisions
		g.StrictMode = flags.Strict
		g.IncludeInfo = !flags.NoInfo
		result, err = g.GenerateParsed(*parsed)
	} else {
		result, err = generator.GenerateWithOptions(
			generator.WithFilePath(specPath),
			generator.WithClientName(flags.ClientName),
			generator.WithTypes(!flags.ClientOnly),
			generator.WithClient(!flags.TypesOnly),
			generator.WithDetectCollisions(flags.DetectCollisions),
			generator.WithStrictMode(flags.Strict),
			generator.WithIncludeInfo(!flags.NoInfo),
		)
	}
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("generating artifacts: %w", err)
	}

	if !flags.Quiet {
		fmt.Printf("API Client Generator\n")
		fmt.Printf("====================\n\n")
		fmt.Printf("apispect version: %s\n", apispect.Version())
		fmt.Printf("Descriptor: %s\n", FormatSpecPath(specPath))
		fmt.Printf("Format: %s\n", result.SourceFormat)
		fmt.Printf("Client Name: %s\n", result.ClientName)
		fmt.Printf("Interfaces: %d\n", result.InterfaceCount)
		fmt.Printf("Methods: %d\n", result.MethodCount)
		fmt.Printf("Total Time: %v\n\n", totalTime)

		if len(result.Issues) > 0 {
			fmt.Printf("Generation Issues (%d):\n", len(result.Issues))
			for _, issue := range result.Issues {
				fmt.Printf("  %s\n", issue.String())
			}
			fmt.Println()
		}
	}

	if err := result.WriteFiles(flags.Output); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}

	if flags.Quiet {
		for _, file := range result.Files {
			fmt.Println(filepath.Join(flags.Output, file.Name))
		}
	} else {
		fmt.Printf("Generated Files (%d):\n", len(result.Files))
		for _, file := range result.Files {
			fmt.Printf("  - %s (%d bytes)\n", filepath.Join(flags.Output, file.Name), len(file.Content))
		}
		fmt.Println()

		if result.Success {
			fmt.Printf("✓ Generation successful")
			if result.InfoCount > 0 || result.WarningCount > 0 {
				fmt.Printf(" (%d info, %d warnings)", result.InfoCount, result.WarningCount)
			}
			fmt.Println()
		} else {
			fmt.Printf("✗ Generation completed with %d critical issue(s)\n", result.CriticalCount)
		}
	}

	if !result.Success {
		return fmt.Errorf("generation failed with %d critical issue(s)", result.CriticalCount)
	}
	return nil
}
