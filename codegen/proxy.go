package codegen

import (
	"go/token"

	"github.com/dave/dst"

	"github.com/wippyai/wevm-cdk/contract"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

// ProxyVar returns the name of the generated proxy value for an interface.
func ProxyVar(iface string) string {
	return iface + "Proxy"
}

func proxyType(iface string) string {
	return ExportPrefix + iface + "Proxy"
}

// proxyDecls renders the proxy value, its type and one method per remote
// function of iface.
func proxyDecls(iface contract.Interface) ([]dst.Decl, error) {
	if len(iface.Methods) == 0 {
		return nil, errors.Malformed(errors.PhaseGenerate, []string{iface.Name}, "interface declares no remote functions")
	}
	typeName := proxyType(iface.Name)

	typ := &dst.GenDecl{
		Tok: token.TYPE,
		Specs: []dst.Spec{&dst.TypeSpec{
			Name: ident(typeName),
			Type: &dst.StructType{Fields: &dst.FieldList{Opening: true, Closing: true}},
		}},
	}
	typ.Decs.Before = dst.EmptyLine

	v := &dst.GenDecl{
		Tok: token.VAR,
		Specs: []dst.Spec{&dst.ValueSpec{
			Names: []*dst.Ident{ident(ProxyVar(iface.Name))},
			Type:  ident(typeName),
		}},
	}
	v.Decs.Before = dst.EmptyLine
	v.Decs.Start.Append("// " + ProxyVar(iface.Name) + " calls " + iface.Name + " functions on another contract.")

	decls := []dst.Decl{v, typ}
	for _, m := range iface.Methods {
		fd, err := proxyMethod(typeName, iface.Name, m)
		if err != nil {
			return nil, err
		}
		decls = append(decls, fd)
	}
	return decls, nil
}

// proxyMethod renders
//
//	func (_we_TokenProxy) transfer(contract cdk.Binary, recipient cdk.Binary, amount cdk.Integer, payments ...cdk.Payment) error {
//		h := cdk.CurrentHost()
//		if err := h.V0.CallArgBinary(recipient).Err(); err != nil {
//			return err
//		}
//		...
//		for _, p := range payments {
//			if err := h.V0.CallPayment(p.AssetID, p.Amount).Err(); err != nil {
//				return err
//			}
//		}
//		return h.V0.CallContract(contract, "transfer").Err()
//	}
func proxyMethod(typeName, ifaceName string, m contract.Method) (*dst.FuncDecl, error) {
	names := newNamer("cdk", "h", "p", "err", "nil")
	contractName := names.name("contract")
	paymentsName := names.name("payments")

	params := []*dst.Field{field(contractName, sel("cdk", "Binary"))}
	stmts := []dst.Stmt{define([]string{"h"}, call(sel("cdk", "CurrentHost")))}

	stage := func(fn, arg string) {
		stmts = append(stmts, checkErr(call(&dst.SelectorExpr{
			X:   call(&dst.SelectorExpr{X: sel("h", "V0"), Sel: ident(fn)}, ident(arg)),
			Sel: ident("Err"),
		})))
	}

	for _, p := range m.Params {
		local := names.name(p.Name)
		params = append(params, field(local, sel("cdk", p.Type.String())))

		err := types.Accept(p.Type, types.VisitorFuncs{
			Integer: func() error { stage("CallArgInt", local); return nil },
			Boolean: func() error { stage("CallArgBool", local); return nil },
			Binary:  func() error { stage("CallArgBinary", local); return nil },
			String:  func() error { stage("CallArgString", local); return nil },
		})
		if err != nil {
			return nil, errors.New(errors.PhaseGenerate, errors.KindUnsupported).
				Pos(p.Pos).Path(ifaceName, m.Name, p.Name).Type(p.Type.String()).Cause(err).Build()
		}
	}
	params = append(params, field(paymentsName, &dst.Ellipsis{Elt: sel("cdk", "Payment")}))

	stmts = append(stmts,
		&dst.RangeStmt{
			Key:   ident("_"),
			Value: ident("p"),
			Tok:   token.DEFINE,
			X:     ident(paymentsName),
			Body: block(checkErr(call(&dst.SelectorExpr{
				X:   call(&dst.SelectorExpr{X: sel("h", "V0"), Sel: ident("CallPayment")}, sel("p", "AssetID"), sel("p", "Amount")),
				Sel: ident("Err"),
			}))),
		},
		ret(call(&dst.SelectorExpr{
			X:   call(&dst.SelectorExpr{X: sel("h", "V0"), Sel: ident("CallContract")}, ident(contractName), stringLit(m.Name)),
			Sel: ident("Err"),
		})),
	)

	fd := &dst.FuncDecl{
		Recv: &dst.FieldList{List: []*dst.Field{{Type: ident(typeName)}}},
		Name: ident(m.Name),
		Type: &dst.FuncType{
			Params:  &dst.FieldList{List: params},
			Results: &dst.FieldList{List: []*dst.Field{{Type: ident("error")}}},
		},
		Body: block(stmts...),
	}
	fd.Decs.Before = dst.EmptyLine
	return fd, nil
}
