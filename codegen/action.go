package codegen

import (
	"github.com/dave/dst"

	"github.com/wippyai/wevm-cdk/contract"
	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

// actionWrapper renders the exported wrapper of one action:
//
//	//export transfer_to
//	func _we_transfer_to(offset_recipient unsafe.Pointer, length_recipient uint32, amount int64) int32 {
//		recipient := cdk.BinaryFrom(offset_recipient, length_recipient)
//		return cdk.Finish(transfer_to(recipient, amount))
//	}
func actionWrapper(a contract.Action, policy Policy) (*dst.FuncDecl, error) {
	names := newNamer("cdk", "unsafe", "err", "nil", a.Name)
	var (
		wire  []*dst.Field
		stmts []dst.Stmt
		args  []dst.Expr
	)

	for _, p := range a.Params {
		local := names.name(p.Name)
		args = append(args, ident(local))

		err := types.Accept(p.Type, types.VisitorFuncs{
			Integer: func() error {
				wire = append(wire, field(local, ident("int64")))
				return nil
			},
			Boolean: func() error {
				wire = append(wire, field(local, ident("bool")))
				return nil
			},
			Binary: func() error {
				offset, length := bytesParams(names, p.Name, &wire)
				stmts = append(stmts, define([]string{local}, call(sel("cdk", "BinaryFrom"), ident(offset), ident(length))))
				return nil
			},
			String: func() error {
				offset, length := bytesParams(names, p.Name, &wire)
				if policy == ValidateUTF8 {
					stmts = append(stmts,
						define([]string{local, "err"}, call(sel("cdk", "ValidStringFrom"), ident(offset), ident(length))),
						&dst.IfStmt{
							Cond: notNil("err"),
							Body: block(ret(call(sel("cdk", "Finish"), ident("err")))),
						},
					)
					return nil
				}
				stmts = append(stmts, define([]string{local}, call(sel("cdk", "StringFrom"), ident(offset), ident(length))))
				return nil
			},
		})
		if err != nil {
			return nil, errors.New(errors.PhaseGenerate, errors.KindUnsupported).
				Pos(p.Pos).Path(a.Name, p.Name).Type(p.Type.String()).Cause(err).Build()
		}
	}

	invoke := call(ident(a.Name), args...)
	if a.ReturnsError {
		stmts = append(stmts, ret(call(sel("cdk", "Finish"), invoke)))
	} else {
		stmts = append(stmts,
			&dst.ExprStmt{X: invoke},
			ret(call(sel("cdk", "Finish"), ident("nil"))),
		)
	}

	fd := &dst.FuncDecl{
		Name: ident(ExportPrefix + a.Name),
		Type: &dst.FuncType{
			Params:  &dst.FieldList{List: wire},
			Results: &dst.FieldList{List: []*dst.Field{{Type: ident("int32")}}},
		},
		Body: block(stmts...),
	}
	fd.Decs.Before = dst.EmptyLine
	fd.Decs.Start.Append("//export " + a.Name)
	return fd, nil
}

func bytesParams(names *namer, param string, wire *[]*dst.Field) (string, string) {
	offset := names.name("offset_" + param)
	length := names.name("length_" + param)
	*wire = append(*wire,
		field(offset, sel("unsafe", "Pointer")),
		field(length, ident("uint32")),
	)
	return offset, length
}
