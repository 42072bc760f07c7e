package codegen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/contract"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

// Generate renders the companion source file of c: one exported wrapper per
// action and one proxy per interface. Output is deterministic for a given
// contract and options. On error no partial output is returned.
func Generate(c *contract.Contract, opts Options) ([]byte, error) {
	opts = opts.withDefaults(c.Package)

	f := &dst.File{Name: ident(opts.Package)}

	var imports []string
	if needsUnsafe(c) {
		imports = append(imports, "unsafe")
	}
	if len(c.Actions) > 0 || len(c.Interfaces) > 0 {
		imports = append(imports, opts.CDKImport)
		f.Decls = append(f.Decls, importDecl(imports...))
	}

	for _, a := range c.Actions {
		fd, err := actionWrapper(a, opts.UTF8)
		if err != nil {
			return nil, err
		}
		f.Decls = append(f.Decls, fd)
	}

	for _, iface := range c.Interfaces {
		decls, err := proxyDecls(iface)
		if err != nil {
			return nil, err
		}
		f.Decls = append(f.Decls, decls...)
	}

	var buf bytes.Buffer
	buf.WriteString(Header)
	if err := decorator.Fprint(&buf, f); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindMalformed, err, "print "+c.Filename)
	}

	Logger().Debug("generated contract glue",
		zap.String("file", c.Filename),
		zap.Int("actions", len(c.Actions)),
		zap.Int("interfaces", len(c.Interfaces)),
		zap.Stringer("utf8", opts.UTF8),
	)
	return buf.Bytes(), nil
}

// OutputPath returns the path of the file generated for the contract source
// at path: counter.go becomes counter_wevm.go.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, ".go") + FileSuffix
}

// GenerateFile parses the contract source at path and writes the generated
// file next to it, or into dir when dir is not empty. It returns the written
// path.
func GenerateFile(path, dir string, opts Options) (string, error) {
	if strings.HasSuffix(path, FileSuffix) {
		return "", errors.InvalidInput(errors.PhaseGenerate, path+" is a generated file")
	}

	c, err := contract.ParseFile(path)
	if err != nil {
		return "", err
	}
	src, err := Generate(c, opts)
	if err != nil {
		return "", err
	}

	out := OutputPath(path)
	if dir != "" {
		out = filepath.Join(dir, filepath.Base(out))
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return "", errors.IO(errors.PhaseGenerate, out, err)
	}
	return out, nil
}

func needsUnsafe(c *contract.Contract) bool {
	for _, a := range c.Actions {
		for _, p := range a.Params {
			if p.Type == types.Binary || p.Type == types.String {
				return true
			}
		}
	}
	return false
}
