package doctest

import (
	"go/ast"
	goparser "go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDocExampleAPISync verifies that the code examples embedded in doc
// comments reference symbols that actually exist in the apispect public
// packages.
//
// This catches:
//   - References to renamed or removed functions (e.g., WithDocument → WithParsed)
//   - References to nonexistent types or constants (e.g., descriptor.KindRef)
//   - References to internal packages in user-facing examples (e.g., severity.SeverityCritical)
func TestDocExampleAPISync(t *testing.T) {
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller(0) failed")
	repoRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")

	// Public apispect packages to verify symbol references against.
	publicPkgNames := []string{
		"auditor", "descriptor", "generator", "indexer", "resolver", "specerrors",
	}

	// Build symbol table: package name → set of exported symbol names.
	symbols := make(map[string]map[string]bool, len(publicPkgNames))
	for _, pkg := range publicPkgNames {
		dir := filepath.Join(repoRoot, pkg)
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		symbols[pkg] = extractExportedSymbols(t, dir)
	}

	// Internal package names that should not be referenced in doc code
	// examples. Value is the public package whose aliases cover the same
	// names (empty if there is no public equivalent).
	internalPkgs := map[string]string{
		"fileutil":  "",
		"issues":    "generator",
		"maputil":   "",
		"mcpserver": "",
		"options":   "",
		"severity":  "generator",
		"testutil":  "",
	}

	// Build regex for matching qualified references: knownPkg.ExportedSymbol.
	allPkgNames := make([]string, 0, len(publicPkgNames)+len(internalPkgs))
	allPkgNames = append(allPkgNames, publicPkgNames...)
	for pkg := range internalPkgs {
		allPkgNames = append(allPkgNames, pkg)
	}
	sort.Strings(allPkgNames)
	refRe := regexp.MustCompile(`\b(` + strings.Join(allPkgNames, "|") + `)\.([A-Z][a-zA-Z0-9]*)`)

	goFiles := findDocGoFiles(t, repoRoot, publicPkgNames)
	require.NotEmpty(t, goFiles, "no Go files found to scan")

	for _, goFile := range goFiles {
		relPath, _ := filepath.Rel(repoRoot, goFile)
		t.Run(relPath, func(t *testing.T) {
			for _, line := range extractDocExampleLines(t, goFile) {
				for _, match := range refRe.FindAllStringSubmatch(line.text, -1) {
					pkg, sym := match[1], match[2]

					// Flag internal package references.
					if alt, isInternal := internalPkgs[pkg]; isInternal {
						if alt != "" {
							t.Errorf("%s:%d: example references internal package %s.%s (use the %s aliases instead)",
								relPath, line.num, pkg, sym, alt)
						} else {
							t.Errorf("%s:%d: example references internal package %s.%s",
								relPath, line.num, pkg, sym)
						}
						continue
					}

					// Verify the symbol exists in the public package.
					pkgSymbols := symbols[pkg]
					if pkgSymbols == nil {
						continue
					}
					assert.True(t, pkgSymbols[sym],
						"%s:%d: example references %s.%s but no such exported symbol exists in the %s package",
						relPath, line.num, pkg, sym, pkg)
				}
			}
		})
	}
}

// docExampleLine is one line of example code extracted from a doc comment.
type docExampleLine struct {
	text string
	num  int // 1-indexed line number in the source file
}

// extractDocExampleLines returns the example code lines of a file's doc
// comments: comment lines in the tab-indented godoc code block form.
func extractDocExampleLines(t *testing.T, path string) []docExampleLine {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "reading %s", path)

	var examples []docExampleLine
	for i, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//\t") {
			examples = append(examples, docExampleLine{
				text: strings.TrimPrefix(trimmed, "//\t"),
				num:  i + 1,
			})
		}
	}
	return examples
}

// extractExportedSymbols uses go/ast to find all exported names (functions,
// methods, types, constants, variables) in the given package directory,
// excluding test files. Methods are included because doc examples use the
// godoc-style package.Method syntax (e.g., result.WriteFiles).
func extractExportedSymbols(t *testing.T, dir string) map[string]bool {
	t.Helper()

	fset := token.NewFileSet()
	pkgs, err := goparser.ParseDir(fset, dir, func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, 0)
	require.NoError(t, err, "parsing package dir %s", dir)

	syms := make(map[string]bool)
	for _, pkg := range pkgs {
		for _, file := range pkg.Files {
			for _, decl := range file.Decls {
				switch d := decl.(type) {
				case *ast.FuncDecl:
					if d.Name.IsExported() {
						syms[d.Name.Name] = true
					}
				case *ast.GenDecl:
					for _, spec := range d.Specs {
						switch s := spec.(type) {
						case *ast.TypeSpec:
							if s.Name.IsExported() {
								syms[s.Name.Name] = true
							}
						case *ast.ValueSpec:
							for _, name := range s.Names {
								if name.IsExported() {
									syms[name.Name] = true
								}
							}
						}
					}
				}
			}
		}
	}
	return syms
}

// findDocGoFiles returns the Go source files whose doc comments are scanned:
// the root doc.go plus every non-test file of the public packages.
func findDocGoFiles(t *testing.T, repoRoot string, pkgNames []string) []string {
	t.Helper()

	var files []string
	rootDoc := filepath.Join(repoRoot, "doc.go")
	if _, err := os.Stat(rootDoc); err == nil {
		files = append(files, rootDoc)
	}

	for _, pkg := range pkgNames {
		entries, err := os.ReadDir(filepath.Join(repoRoot, pkg))
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
				continue
			}
			files = append(files, filepath.Join(repoRoot, pkg, name))
		}
	}

	sort.Strings(files)
	return files
}
