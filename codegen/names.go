package codegen

// namer hands out identifiers that are unique within one generated function
// and never shadow the packages or locals the generated body relies on.
type namer struct {
	used map[string]bool
}

func newNamer(reserved ...string) *namer {
	n := &namer{used: make(map[string]bool)}
	for _, r := range reserved {
		n.used[r] = true
	}
	return n
}

func (n *namer) name(want string) string {
	for n.used[want] {
		want += "_"
	}
	n.used[want] = true
	return want
}
