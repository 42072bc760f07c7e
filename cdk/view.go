package cdk

import (
	"unicode/utf8"
	"unsafe"
)

// BinaryFrom returns a view over n bytes at ptr. The bytes are not copied or
// checked and belong to the caller; the view is valid only during the
// current call.
func BinaryFrom(ptr unsafe.Pointer, n uint32) Binary {
	if n == 0 {
		return Binary{}
	}
	return unsafe.Slice((*byte)(ptr), n)
}

// StringFrom returns a string view over n bytes at ptr without UTF-8
// validation. The host is trusted to pass well-formed text.
func StringFrom(ptr unsafe.Pointer, n uint32) String {
	if n == 0 {
		return ""
	}
	return unsafe.String((*byte)(ptr), n)
}

// ValidStringFrom is StringFrom with UTF-8 validation. Malformed input fails
// with StatusException.
func ValidStringFrom(ptr unsafe.Pointer, n uint32) (String, error) {
	s := StringFrom(ptr, n)
	if !utf8.ValidString(s) {
		return "", &Failure{Status: StatusException, Message: "invalid UTF-8 argument"}
	}
	return s, nil
}

// BinaryPtr returns the pointer and length a host passes for b.
func BinaryPtr(b Binary) (unsafe.Pointer, uint32) {
	if len(b) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(unsafe.SliceData(b)), uint32(len(b))
}

// StringPtr returns the pointer and length a host passes for s.
func StringPtr(s String) (unsafe.Pointer, uint32) {
	if len(s) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(unsafe.StringData(s)), uint32(len(s))
}
