package doctest

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDocOptionSync verifies that every exported With* option function in
// each package is either shown in the package's doc.go overview or listed as
// a known exception, and that every With* name the overview mentions exists
// in source.
func TestDocOptionSync(t *testing.T) {
	// Resolve the repo root from this test file's location.
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller(0) failed to retrieve file path")
	repoRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")

	packages := []struct {
		name string
		dir  string // relative to repo root
	}{
		{"descriptor", "descriptor"},
		{"indexer", "indexer"},
		{"resolver", "resolver"},
		{"generator", "generator"},
		{"auditor", "auditor"},
	}

	// Known exceptions: With* functions intentionally not shown in doc.go.
	// Each entry maps package name -> set of function names to skip for
	// source->doc checks.
	sourceExceptions := map[string]map[string]bool{
		// The overview shows the file-path and structure-check options that
		// most callers reach for; the rest are source and plumbing variants
		// documented on the declarations themselves.
		"descriptor": {
			"WithReader":     true,
			"WithBytes":      true,
			"WithUserAgent":  true,
			"WithHTTPClient": true,
			"WithLogger":     true,
			"WithSourceName": true,
		},

		// Source and plumbing variants.
		"indexer": {
			"WithBytes":     true,
			"WithParsed":    true,
			"WithUserAgent": true,
			"WithLogger":    true,
		},

		// The resolver overview shows the direct two-argument calls; the
		// options form is documented on ParametersWithOptions and
		// BodyWithOptions themselves.
		"resolver": {
			"WithBytes":     true,
			"WithParsed":    true,
			"WithPath":      true,
			"WithMethod":    true,
			"WithUserAgent": true,
			"WithLogger":    true,
		},

		// Artifact toggles and plumbing variants; the overview shows the
		// naming options and collision detection.
		"generator": {
			"WithBytes":       true,
			"WithParsed":      true,
			"WithTypes":       true,
			"WithClient":      true,
			"WithStrictMode":  true,
			"WithIncludeInfo": true,
			"WithUserAgent":   true,
			"WithLogger":      true,
		},

		// Source and plumbing variants.
		"auditor": {
			"WithBytes":     true,
			"WithParsed":    true,
			"WithUserAgent": true,
			"WithLogger":    true,
		},
	}

	for _, pkg := range packages {
		t.Run(pkg.name, func(t *testing.T) {
			pkgDir := filepath.Join(repoRoot, pkg.dir)
			docPath := filepath.Join(pkgDir, "doc.go")

			// Extract With* functions from Go source.
			sourceOpts := extractWithFunctions(t, pkgDir)
			if len(sourceOpts) == 0 {
				t.Skipf("no With* functions found in %s", pkg.dir)
			}

			// Extract With* names from doc.go.
			docOpts := extractDocOptions(t, docPath)

			srcExc := sourceExceptions[pkg.name]

			// Check: every source With* function must appear in the doc.
			for _, fn := range sourceOpts {
				if srcExc[fn] {
					continue
				}
				assert.True(t, docOpts[fn], "function %s() exists in %s/ source but is not referenced in doc.go", fn, pkg.name)
			}

			// Check: every documented With* must exist in source.
			sourceSet := make(map[string]bool, len(sourceOpts))
			for _, fn := range sourceOpts {
				sourceSet[fn] = true
			}
			for fn := range docOpts {
				assert.True(t, sourceSet[fn], "doc.go references %s() but no such function exists in %s/ source", fn, pkg.name)
			}

			// Check: sourceExceptions entries are not stale.
			for fn := range srcExc {
				assert.True(t, sourceSet[fn], "sourceExceptions lists %s for %s/ but no such function exists in source (stale exception?)", fn, pkg.name)
			}
		})
	}
}

// extractWithFunctions uses go/ast to find all exported With* functions
// (not methods) in the given package directory, excluding test files.
func extractWithFunctions(t *testing.T, dir string) []string {
	t.Helper()

	fset := token.NewFileSet()
	pkgs, err := goparser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, 0)
	require.NoError(t, err, "parsing package dir %s", dir)

	var funcs []string
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			for _, decl := range file.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || fn.Recv != nil {
					continue
				}
				if fn.Name.IsExported() && strings.HasPrefix(fn.Name.Name, "With") {
					funcs = append(funcs, fn.Name.Name)
				}
			}
		}
	}
	return funcs
}

// extractDocOptions reads a package's doc.go and extracts the With* option
// names its comment references, in either qualified call form or prose.
func extractDocOptions(t *testing.T, path string) map[string]bool {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "reading %s", path)

	re := regexp.MustCompile(`\bWith[A-Z][a-zA-Z0-9]*`)

	result := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		for _, match := range re.FindAllString(line, -1) {
			result[match] = true
		}
	}
	return result
}
