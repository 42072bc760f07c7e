package types

// Visitor handles each primitive variant.
type Visitor interface {
	VisitInteger() error
	VisitBoolean() error
	VisitBinary() error
	VisitString() error
	VisitPayment() error
}

// Accept dispatches t to the matching Visitor method.
func Accept(t PrimitiveType, v Visitor) error {
	switch t {
	case Integer:
		return v.VisitInteger()
	case Boolean:
		return v.VisitBoolean()
	case Binary:
		return v.VisitBinary()
	case String:
		return v.VisitString()
	case Payment:
		return v.VisitPayment()
	}
	return unknown(t)
}

// VisitorFuncs adapts plain functions to Visitor. A nil field reports the
// variant as unsupported.
type VisitorFuncs struct {
	Integer func() error
	Boolean func() error
	Binary  func() error
	String  func() error
	Payment func() error
}

func (f VisitorFuncs) VisitInteger() error { return call(f.Integer, Integer) }
func (f VisitorFuncs) VisitBoolean() error { return call(f.Boolean, Boolean) }
func (f VisitorFuncs) VisitBinary() error  { return call(f.Binary, Binary) }
func (f VisitorFuncs) VisitString() error  { return call(f.String, String) }
func (f VisitorFuncs) VisitPayment() error { return call(f.Payment, Payment) }

func call(fn func() error, t PrimitiveType) error {
	if fn == nil {
		return unsupported(t)
	}
	return fn()
}
