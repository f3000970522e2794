package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// keyData is a KeySpec with every derived name filled in.
type keyData struct {
	Name    string
	Func    string
	Var     string
	Type    string
	Default string
	Doc     string
}

// templateData is the input passed to the Go template.
type templateData struct {
	Package  string
	SpecPath string
	DIAlias  string
	Imports  []ImportSpec
	Keys     []keyData
}

func buildTemplateData(spec Spec, specPath string) templateData {
	// User imports come first so an alias given for the di path survives UniqBy.
	imports := lo.UniqBy(spec.Imports, func(imp ImportSpec) string { return imp.Path })
	if !lo.ContainsBy(imports, func(imp ImportSpec) bool { return imp.Path == spec.DIImport }) {
		imports = append(imports, ImportSpec{Path: spec.DIImport})
	}
	sort.SliceStable(imports, func(i, j int) bool { return imports[i].Path < imports[j].Path })

	diAlias := "di"
	if imp, ok := lo.Find(imports, func(imp ImportSpec) bool { return imp.Path == spec.DIImport }); ok && imp.Alias != "" {
		diAlias = imp.Alias
	}

	keys := lo.Map(spec.Keys, func(k KeySpec, _ int) keyData {
		name := exportedName(k.Name)
		def := k.Default
		if def == "" {
			def = "*new(" + k.Type + ")"
		}
		return keyData{
			Name:    k.Name,
			Func:    name,
			Var:     name + "Key",
			Type:    k.Type,
			Default: def,
			Doc:     k.Doc,
		}
	})

	return templateData{
		Package:  spec.Package,
		SpecPath: filepath.ToSlash(specPath),
		DIAlias:  diAlias,
		Imports:  imports,
		Keys:     keys,
	}
}

// render executes the template and gofmts the result.
func render(data templateData) ([]byte, error) {
	var out bytes.Buffer
	if err := genTemplate.Execute(&out, data); err != nil {
		return nil, err
	}
	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return src, nil
}

// genTemplate is the Go source template used to generate key accessors.
var genTemplate = template.Must(
	template.New("keygen").Parse(`// Code generated by keygen from {{.SpecPath}}; DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

// Declared keys.
var (
{{- range .Keys}}
	{{.Var}} = {{$.DIAlias}}.NewKey[{{.Type}}]("{{.Name}}", {{.Default}})
{{- end}}
)
{{range .Keys}}
// {{.Func}} returns the {{.Name}} value stored in c, or its default.
{{- if .Doc}}
//
// {{.Doc}}
{{- end}}
func {{.Func}}(c *{{$.DIAlias}}.Container) {{.Type}} {
	return {{$.DIAlias}}.Get(c, {{.Var}})
}

// Set{{.Func}} stores v as the {{.Name}} value in c.
func Set{{.Func}}(c *{{$.DIAlias}}.Container, v {{.Type}}) {
	{{$.DIAlias}}.Set(c, {{.Var}}, v)
}
{{end -}}
`),
)

// tempFile is the part of *os.File that writeFileAtomic uses.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// Filesystem calls made by writeFileAtomic; tests replace them to inject failures.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic replaces targetPath with data. The bytes go to a sibling temp file
// first; the final rename is the only step readers can observe. On failure the temp
// file is removed.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) error {
	tmp, err := createTempFile(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", targetPath, err)
	}
	if err := commitTemp(tmp, targetPath, data, perm); err != nil {
		_ = removeFile(tmp.Name())
		return fmt.Errorf("write %s: %w", targetPath, err)
	}
	return nil
}

// commitTemp fills tmp, closes it and moves it over targetPath.
func commitTemp(tmp tempFile, targetPath string, data []byte, perm os.FileMode) error {
	_, writeErr := tmp.Write(data)
	if err := multierr.Combine(writeErr, tmp.Close()); err != nil {
		return err
	}
	if err := chmodFile(tmp.Name(), perm); err != nil {
		return err
	}
	return renameFile(tmp.Name(), targetPath)
}
