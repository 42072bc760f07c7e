package wasm

import "github.com/tetratelabs/wazero/api"

// Magic and Version open every binary module.
const (
	Magic   uint32 = 0x6D736100 // "\0asm"
	Version uint32 = 1
)

// Section IDs. Sections must appear in increasing order, custom sections last here.
const (
	SectionCustom   byte = 0
	SectionType     byte = 1
	SectionImport   byte = 2
	SectionFunction byte = 3
	SectionMemory   byte = 5
	SectionExport   byte = 7
	SectionCode     byte = 10
)

// Import/export kinds
const (
	KindFunc   byte = 0
	KindMemory byte = 2
)

const funcTypeByte byte = 0x60

// Opcodes used by the synthetic bodies this package emits.
const (
	OpEnd      byte = 0x0B
	OpI32Const byte = 0x41
	OpI64Const byte = 0x42
)

// FuncType is a function signature over flat value types.
type FuncType struct {
	Params  []api.ValueType
	Results []api.ValueType
}

// Equal reports whether two signatures are identical.
func (f FuncType) Equal(o FuncType) bool {
	return equalTypes(f.Params, o.Params) && equalTypes(f.Results, o.Results)
}

func equalTypes(a, b []api.ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Import is a function import.
type Import struct {
	Module  string
	Name    string
	TypeIdx uint32
}

// Export exposes a function or memory by index.
type Export struct {
	Name string
	Kind byte
	Idx  uint32
}

// Memory declares a linear memory in pages.
type Memory struct {
	Max *uint32
	Min uint32
}

// Local declares Count locals of one type.
type Local struct {
	Count uint32
	Type  api.ValueType
}

// FuncBody is the code of a locally defined function. Code holds the raw
// instruction bytes, including the terminating end opcode.
type FuncBody struct {
	Locals []Local
	Code   []byte
}

// CustomSection is an opaque named section.
type CustomSection struct {
	Name string
	Data []byte
}

// Module is the subset of a core module needed to describe a contract
// boundary: signatures, host imports, action exports and their bodies.
type Module struct {
	Types          []FuncType
	Imports        []Import
	Funcs          []uint32 // type index per locally defined function
	Memories       []Memory
	Exports        []Export
	Code           []FuncBody
	CustomSections []CustomSection
}

// AddType returns the index of ft, appending it when no identical type exists.
func (m *Module) AddType(ft FuncType) uint32 {
	for i, t := range m.Types {
		if t.Equal(ft) {
			return uint32(i)
		}
	}
	m.Types = append(m.Types, ft)
	return uint32(len(m.Types) - 1)
}

// AddImport appends a function import. Imports must be added before any
// local function so that function indices stay stable.
func (m *Module) AddImport(module, name string, ft FuncType) uint32 {
	m.Imports = append(m.Imports, Import{Module: module, Name: name, TypeIdx: m.AddType(ft)})
	return uint32(len(m.Imports) - 1)
}

// AddFunc appends a local function and returns its function index.
func (m *Module) AddFunc(ft FuncType, body FuncBody) uint32 {
	m.Funcs = append(m.Funcs, m.AddType(ft))
	m.Code = append(m.Code, body)
	return uint32(len(m.Imports) + len(m.Funcs) - 1)
}

// ExportFunc exports a function index under name.
func (m *Module) ExportFunc(name string, idx uint32) {
	m.Exports = append(m.Exports, Export{Name: name, Kind: KindFunc, Idx: idx})
}

// ConstBody returns a body that ignores its parameters and returns v for a
// single i32 or i64 result, or nothing when results is empty.
func ConstBody(results []api.ValueType, v int64) FuncBody {
	w := newWriter()
	for _, r := range results {
		switch r {
		case api.ValueTypeI64:
			w.Byte(OpI64Const)
			w.WriteS64(v)
		default:
			w.Byte(OpI32Const)
			w.WriteS64(int64(int32(v)))
		}
	}
	w.Byte(OpEnd)
	return FuncBody{Code: w.Bytes()}
}
