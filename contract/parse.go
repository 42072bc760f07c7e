package contract

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"

	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

// ParseFile reads and parses a contract source file.
func ParseFile(path string) (*Contract, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseParse, path, err)
	}
	return Parse(path, src)
}

// Parse builds the contract model of src. It fails without a partial result
// on syntax errors, unknown parameter types and malformed declarations.
func Parse(filename string, src []byte) (*Contract, error) {
	fset := token.NewFileSet()
	d := decorator.NewDecorator(fset)
	f, err := d.ParseFile(filename, src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseParse, errors.KindMalformed, err, filename)
	}

	p := &fileParser{
		dec:  d,
		fset: fset,
		c: &Contract{
			Package:  f.Name.Name,
			Filename: filename,
		},
	}
	p.c.Qualifier, p.dotImport = sdkQualifier(f)

	for _, decl := range f.Decls {
		var err error
		switch decl := decl.(type) {
		case *dst.FuncDecl:
			err = p.funcDecl(decl)
		case *dst.GenDecl:
			err = p.genDecl(decl)
		}
		if err != nil {
			return nil, err
		}
	}
	return p.c, nil
}

type fileParser struct {
	dec       *decorator.Decorator
	fset      *token.FileSet
	c         *Contract
	dotImport bool
}

// sdkQualifier returns the local name the SDK is imported under.
func sdkQualifier(f *dst.File) (string, bool) {
	for _, imp := range f.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil || path != types.SDKPackage {
			continue
		}
		if imp.Name == nil {
			return "cdk", false
		}
		if imp.Name.Name == "." {
			return "", true
		}
		return imp.Name.Name, false
	}
	return "", false
}

func hasDirective(decs dst.Decorations, directive string) bool {
	for _, line := range decs {
		if strings.TrimSpace(line) == directive {
			return true
		}
	}
	return false
}

func (p *fileParser) pos(n dst.Node) string {
	if an, ok := p.dec.Ast.Nodes[n]; ok {
		return p.fset.Position(an.Pos()).String()
	}
	return p.c.Filename
}

func (p *fileParser) funcDecl(fd *dst.FuncDecl) error {
	if !hasDirective(fd.Decs.Start, ActionDirective) {
		return nil
	}
	name := fd.Name.Name
	pos := p.pos(fd)

	if fd.Recv != nil {
		return errors.New(errors.PhaseParse, errors.KindMalformed).
			Pos(pos).Path(name).
			Detail("actions must be top-level functions, not methods").
			Build()
	}
	if fd.Type.TypeParams != nil && len(fd.Type.TypeParams.List) > 0 {
		return errors.New(errors.PhaseParse, errors.KindMalformed).
			Pos(pos).Path(name).
			Detail("actions cannot have type parameters").
			Build()
	}
	if _, dup := p.c.Action(name); dup {
		return errors.New(errors.PhaseParse, errors.KindDuplicate).
			Pos(pos).Path(name).
			Detail("action %q declared more than once", name).
			Build()
	}

	params, err := p.params(name, fd.Type.Params)
	if err != nil {
		return err
	}

	returnsError, err := p.actionResult(name, pos, fd.Type.Results)
	if err != nil {
		return err
	}

	p.c.Actions = append(p.c.Actions, Action{
		Name:         name,
		Pos:          pos,
		Params:       params,
		ReturnsError: returnsError,
	})
	return nil
}

func (p *fileParser) actionResult(name, pos string, results *dst.FieldList) (bool, error) {
	if results == nil || len(results.List) == 0 {
		return false, nil
	}
	if len(results.List) == 1 && len(results.List[0].Names) <= 1 {
		if id, ok := results.List[0].Type.(*dst.Ident); ok && id.Name == "error" && id.Path == "" {
			return true, nil
		}
	}
	return false, errors.New(errors.PhaseParse, errors.KindMalformed).
		Pos(pos).Path(name).
		Detail("actions may return nothing or a single error").
		Build()
}

func (p *fileParser) genDecl(gd *dst.GenDecl) error {
	for _, spec := range gd.Specs {
		ts, ok := spec.(*dst.TypeSpec)
		if !ok {
			if gd.Tok != token.TYPE && hasDirective(gd.Decs.Start, ActionDirective) {
				return errors.New(errors.PhaseParse, errors.KindMalformed).
					Pos(p.pos(gd)).
					Detail("%s applies to functions only", ActionDirective).
					Build()
			}
			continue
		}

		decs := ts.Decs.Start
		if len(gd.Specs) == 1 {
			decs = append(append(dst.Decorations{}, gd.Decs.Start...), decs...)
		}

		if hasDirective(decs, ActionDirective) {
			return errors.New(errors.PhaseParse, errors.KindMalformed).
				Pos(p.pos(ts)).Path(ts.Name.Name).
				Detail("%s applies to functions only", ActionDirective).
				Build()
		}
		if !hasDirective(decs, InterfaceDirective) {
			continue
		}
		if err := p.interfaceSpec(ts); err != nil {
			return err
		}
	}
	return nil
}

func (p *fileParser) interfaceSpec(ts *dst.TypeSpec) error {
	name := ts.Name.Name
	pos := p.pos(ts)

	it, ok := ts.Type.(*dst.InterfaceType)
	if !ok {
		return errors.New(errors.PhaseParse, errors.KindMalformed).
			Pos(pos).Path(name).
			Detail("%s applies to interface types only", InterfaceDirective).
			Build()
	}
	if ts.TypeParams != nil && len(ts.TypeParams.List) > 0 {
		return errors.New(errors.PhaseParse, errors.KindMalformed).
			Pos(pos).Path(name).
			Detail("interfaces cannot have type parameters").
			Build()
	}
	for _, other := range p.c.Interfaces {
		if other.Name == name {
			return errors.Duplicate(errors.PhaseParse, "interface", name)
		}
	}

	if it.Methods == nil || len(it.Methods.List) == 0 {
		err := errors.Malformed(errors.PhaseParse, []string{name}, "interface declares no remote functions")
		err.Pos = pos
		return err
	}

	iface := Interface{Name: name, Pos: pos}
	seen := make(map[string]bool)
	for _, field := range it.Methods.List {
		if len(field.Names) == 0 {
			return errors.New(errors.PhaseParse, errors.KindUnsupported).
				Pos(p.pos(field)).Path(name).
				Detail("embedded interfaces are not supported").
				Build()
		}
		ft, ok := field.Type.(*dst.FuncType)
		if !ok {
			return errors.New(errors.PhaseParse, errors.KindUnsupported).
				Pos(p.pos(field)).Path(name).
				Detail("type constraints are not supported").
				Build()
		}
		mname := field.Names[0].Name
		mpos := p.pos(field)
		if seen[mname] {
			return errors.New(errors.PhaseParse, errors.KindDuplicate).
				Pos(mpos).Path(name, mname).
				Detail("method %q declared more than once", mname).
				Build()
		}
		seen[mname] = true

		if ft.Results != nil && len(ft.Results.List) > 0 {
			return errors.New(errors.PhaseParse, errors.KindMalformed).
				Pos(mpos).Path(name, mname).
				Detail("remote functions cannot declare results").
				Build()
		}
		params, err := p.params(name+"."+mname, ft.Params)
		if err != nil {
			return err
		}
		iface.Methods = append(iface.Methods, Method{Name: mname, Pos: mpos, Params: params})
	}

	p.c.Interfaces = append(p.c.Interfaces, iface)
	return nil
}

func (p *fileParser) params(owner string, list *dst.FieldList) ([]Param, error) {
	if list == nil {
		return nil, nil
	}
	var out []Param
	seen := make(map[string]bool)
	for _, field := range list.List {
		pos := p.pos(field)
		if _, variadic := field.Type.(*dst.Ellipsis); variadic {
			return nil, errors.New(errors.PhaseParse, errors.KindUnsupported).
				Pos(pos).Path(owner).
				Detail("variadic parameters are not supported").
				Build()
		}
		if len(field.Names) == 0 {
			return nil, errors.New(errors.PhaseParse, errors.KindMalformed).
				Pos(pos).Path(owner).
				Detail("parameters must be named").
				Build()
		}

		expr := exprString(field.Type)
		t, err := types.Resolve(expr, p.qualifier())
		if err != nil {
			return nil, errors.New(errors.PhaseResolve, errors.KindUnknownType).
				Pos(pos).Path(owner, field.Names[0].Name).
				Type(expr).
				Detail("not one of Integer, Boolean, Binary, String").
				Build()
		}
		if !t.IsParam() {
			return nil, errors.New(errors.PhaseResolve, errors.KindUnsupported).
				Pos(pos).Path(owner, field.Names[0].Name).
				Type(expr).
				Detail("Payment cannot be a parameter; attach payments to the call instead").
				Build()
		}

		for _, n := range field.Names {
			if n.Name == "_" {
				return nil, errors.New(errors.PhaseParse, errors.KindMalformed).
					Pos(pos).Path(owner).
					Detail("blank parameter names are not supported").
					Build()
			}
			if seen[n.Name] {
				return nil, errors.Duplicate(errors.PhaseParse, "parameter", n.Name)
			}
			seen[n.Name] = true
			out = append(out, Param{Name: n.Name, Pos: pos, Type: t})
		}
	}
	return out, nil
}

// qualifier returns the SDK name accepted in selector expressions. A file
// that does not import the SDK still accepts "cdk." for readability.
func (p *fileParser) qualifier() string {
	if p.c.Qualifier != "" {
		return p.c.Qualifier
	}
	if p.dotImport {
		return ""
	}
	return "cdk"
}

// exprString renders a type expression for resolution and messages.
func exprString(e dst.Expr) string {
	switch e := e.(type) {
	case *dst.Ident:
		if e.Path != "" {
			return e.Path + "." + e.Name
		}
		return e.Name
	case *dst.SelectorExpr:
		return exprString(e.X) + "." + e.Sel.Name
	case *dst.StarExpr:
		return "*" + exprString(e.X)
	case *dst.ArrayType:
		if e.Len == nil {
			return "[]" + exprString(e.Elt)
		}
		return "[" + exprString(e.Len) + "]" + exprString(e.Elt)
	case *dst.MapType:
		return "map[" + exprString(e.Key) + "]" + exprString(e.Value)
	case *dst.BasicLit:
		return e.Value
	case *dst.Ellipsis:
		return "..." + exprString(e.Elt)
	case *dst.InterfaceType:
		return "interface{...}"
	case *dst.FuncType:
		return "func(...)"
	case *dst.ChanType:
		return "chan " + exprString(e.Value)
	}
	return fmt.Sprintf("%T", e)
}
