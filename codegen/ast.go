package codegen

import (
	"go/token"
	"strconv"

	"github.com/dave/dst"
)

func ident(name string) *dst.Ident {
	return dst.NewIdent(name)
}

func sel(pkg, name string) *dst.SelectorExpr {
	return &dst.SelectorExpr{X: ident(pkg), Sel: ident(name)}
}

func call(fun dst.Expr, args ...dst.Expr) *dst.CallExpr {
	return &dst.CallExpr{Fun: fun, Args: args}
}

func stringLit(s string) *dst.BasicLit {
	return &dst.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func field(name string, typ dst.Expr) *dst.Field {
	return &dst.Field{Names: []*dst.Ident{ident(name)}, Type: typ}
}

func define(lhs []string, rhs dst.Expr) *dst.AssignStmt {
	exprs := make([]dst.Expr, len(lhs))
	for i, n := range lhs {
		exprs[i] = ident(n)
	}
	return &dst.AssignStmt{Lhs: exprs, Tok: token.DEFINE, Rhs: []dst.Expr{rhs}}
}

func ret(results ...dst.Expr) *dst.ReturnStmt {
	return &dst.ReturnStmt{Results: results}
}

func block(stmts ...dst.Stmt) *dst.BlockStmt {
	return &dst.BlockStmt{List: stmts}
}

func notNil(name string) *dst.BinaryExpr {
	return &dst.BinaryExpr{X: ident(name), Op: token.NEQ, Y: ident("nil")}
}

// checkErr renders
//
//	if err := <expr>; err != nil {
//		return err
//	}
func checkErr(expr dst.Expr) *dst.IfStmt {
	return &dst.IfStmt{
		Init: define([]string{"err"}, expr),
		Cond: notNil("err"),
		Body: block(ret(ident("err"))),
	}
}

func importDecl(paths ...string) *dst.GenDecl {
	specs := make([]dst.Spec, 0, len(paths))
	for i, path := range paths {
		spec := &dst.ImportSpec{Path: stringLit(path)}
		// standard library first, separated from module imports
		if i > 0 && isStd(paths[i-1]) != isStd(path) {
			spec.Decs.Before = dst.EmptyLine
		}
		specs = append(specs, spec)
	}
	decl := &dst.GenDecl{Tok: token.IMPORT, Specs: specs}
	if len(specs) > 1 {
		decl.Lparen = true
		decl.Rparen = true
	}
	return decl
}

func isStd(path string) bool {
	for _, r := range path {
		if r == '.' {
			return false
		}
		if r == '/' {
			break
		}
	}
	return true
}
