package main

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// defaultDIImport is the import path of package di used by generated code.
const defaultDIImport = "github.com/sghaida/envdi/di"

// KeySpec describes one declared key.
type KeySpec struct {
	// Name is the key's name and, capitalised, the accessor name.
	Name string `yaml:"name"`

	// Type is the Go type of the value, e.g. "time.Duration" or "*log.Logger".
	Type string `yaml:"type"`

	// Default is a Go expression of Type. Empty means the zero value.
	Default string `yaml:"default"`

	// Doc is appended to the accessor's doc comment.
	Doc string `yaml:"doc"`
}

// ImportSpec models one Go import: optional alias and full import path.
type ImportSpec struct {
	Alias string `yaml:"alias"`
	Path  string `yaml:"path"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	Package string       `yaml:"package"`
	Imports []ImportSpec `yaml:"imports"`
	Keys    []KeySpec    `yaml:"keys"`

	// DIImport overrides the import path of package di (forks, vendored copies).
	DIImport string `yaml:"diImport"`
}

// loadSpec reads and decodes the spec at specPath.
func loadSpec(specPath string) (Spec, error) {
	raw, err := os.ReadFile(specPath)
	if err != nil {
		return Spec{}, err
	}

	var spec Spec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return Spec{}, fmt.Errorf("decode %s: %w", specPath, err)
	}
	if strings.TrimSpace(spec.DIImport) == "" {
		spec.DIImport = defaultDIImport
	}
	return spec, nil
}

// validateSpec reports every problem in spec at once.
func validateSpec(spec *Spec) error {
	var errs error

	if !token.IsIdentifier(spec.Package) {
		errs = multierr.Append(errs, fmt.Errorf("package: %q is not a Go identifier", spec.Package))
	}
	if len(spec.Keys) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("keys: must have at least 1"))
	}

	for i, imp := range spec.Imports {
		if strings.TrimSpace(imp.Path) == "" {
			errs = multierr.Append(errs, fmt.Errorf("imports[%d]: path is required", i))
		}
		if imp.Alias != "" && imp.Alias != "_" && imp.Alias != "." && !token.IsIdentifier(imp.Alias) {
			errs = multierr.Append(errs, fmt.Errorf("imports[%d]: alias %q is not a Go identifier", i, imp.Alias))
		}
	}

	for i, key := range spec.Keys {
		if !token.IsIdentifier(key.Name) {
			errs = multierr.Append(errs, fmt.Errorf("keys[%d]: name %q is not a Go identifier", i, key.Name))
			continue
		}
		if strings.HasPrefix(key.Name, "_") {
			errs = multierr.Append(errs, fmt.Errorf("keys[%d]: name %q cannot be exported", i, key.Name))
		}
		if _, err := parser.ParseExpr(key.Type); strings.TrimSpace(key.Type) == "" || err != nil {
			errs = multierr.Append(errs, fmt.Errorf("keys[%d] %s: type %q is not a Go type expression", i, key.Name, key.Type))
		}
		if key.Default != "" {
			if _, err := parser.ParseExpr(key.Default); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("keys[%d] %s: default %q is not a Go expression", i, key.Name, key.Default))
			}
		}
	}

	generated := lo.FlatMap(spec.Keys, func(k KeySpec, _ int) []string { return generatedIdents(k.Name) })
	for _, dup := range lo.FindDuplicates(generated) {
		errs = multierr.Append(errs, fmt.Errorf("keys: duplicate generated identifier %s", dup))
	}

	return errs
}

// generatedIdents lists the package-level names emitted for a key named name.
func generatedIdents(name string) []string {
	fn := exportedName(name)
	return []string{fn, fn + "Key", "Set" + fn}
}

// exportedName upper-cases the first letter of name.
func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
