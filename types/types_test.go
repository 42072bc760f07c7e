package types

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wevm-cdk/errors"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		expr      string
		qualifier string
		want      PrimitiveType
		wantErr   bool
	}{
		{expr: "Integer", want: Integer},
		{expr: "Boolean", want: Boolean},
		{expr: "Binary", want: Binary},
		{expr: "String", want: String},
		{expr: "Payment", want: Payment},
		{expr: "cdk.Integer", qualifier: "cdk", want: Integer},
		{expr: "we.Binary", qualifier: "we", want: Binary},
		{expr: " String ", want: String},
		{expr: "cdk.Integer", qualifier: "", wantErr: true},
		{expr: "other.Integer", qualifier: "cdk", wantErr: true},
		{expr: "int64", wantErr: true},
		{expr: "[]byte", wantErr: true},
		{expr: "integer", wantErr: true},
		{expr: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Resolve(tt.expr, tt.qualifier)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindUnknownType}))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWire(t *testing.T) {
	i64 := []api.ValueType{api.ValueTypeI64}
	i32 := []api.ValueType{api.ValueTypeI32}
	pair := []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}

	for typ, want := range map[PrimitiveType][]api.ValueType{
		Integer: i64,
		Boolean: i32,
		Binary:  pair,
		String:  pair,
	} {
		got, err := Wire(typ)
		require.NoError(t, err, typ.String())
		assert.Equal(t, want, got, typ.String())
		assert.Equal(t, len(want), WireCount(typ), typ.String())
	}

	_, err := Wire(Payment)
	require.Error(t, err)
	assert.Zero(t, WireCount(Payment))

	_, err = Wire(PrimitiveType(42))
	require.Error(t, err)
}

func TestWireSignature(t *testing.T) {
	params := []PrimitiveType{Binary, Integer, Boolean, String}
	got, err := WireSignature(params)
	require.NoError(t, err)

	// each Binary/String contributes two values, each Integer/Boolean one
	want := 0
	for _, p := range params {
		want += WireCount(p)
	}
	assert.Len(t, got, want)
	assert.Equal(t, "(i32, i32, i64, i32, i32, i32)", FormatValueTypes(got))

	_, err = WireSignature([]PrimitiveType{Integer, Payment})
	require.Error(t, err)
}

func TestTextRoundTrip(t *testing.T) {
	type holder struct {
		Type PrimitiveType `json:"type"`
	}

	data, err := json.Marshal(holder{Type: Binary})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Binary"}`, string(data))

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Boolean"}`), &h))
	assert.Equal(t, Boolean, h.Type)

	require.Error(t, json.Unmarshal([]byte(`{"type":"Float"}`), &h))

	_, err = json.Marshal(holder{})
	require.Error(t, err)
}

func TestAccept(t *testing.T) {
	var seen []string
	v := VisitorFuncs{
		Integer: func() error { seen = append(seen, "i"); return nil },
		Boolean: func() error { seen = append(seen, "b"); return nil },
		Binary:  func() error { seen = append(seen, "bin"); return nil },
		String:  func() error { seen = append(seen, "s"); return nil },
	}

	for _, typ := range []PrimitiveType{Integer, Boolean, Binary, String} {
		require.NoError(t, Accept(typ, v))
	}
	assert.Equal(t, []string{"i", "b", "bin", "s"}, seen)

	err := Accept(Payment, v)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindUnsupported}))

	require.Error(t, Accept(PrimitiveType(0), v))
}

func TestIsParam(t *testing.T) {
	assert.True(t, Integer.IsParam())
	assert.True(t, String.IsParam())
	assert.False(t, Payment.IsParam())
	assert.False(t, PrimitiveType(0).IsParam())
	assert.Equal(t, "PrimitiveType(9)", PrimitiveType(9).String())
}
