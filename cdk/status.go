package cdk

import (
	"errors"
	"strconv"
	"strings"
)

// Status is the code a host call or an action returns. Zero is success.
type Status int32

const (
	StatusOK        Status = 0
	StatusException Status = 300

	// StatusUnlinked is returned by WasmHost for imports TinyGo cannot
	// declare, and by every import in native builds.
	StatusUnlinked Status = 399
)

func (s Status) Error() string {
	return "status " + strconv.Itoa(int(s))
}

// Err returns nil for StatusOK and the status itself otherwise.
func (s Status) Err() error {
	if s == StatusOK {
		return nil
	}
	return s
}

// Failure is a status with a message, produced by Require.
type Failure struct {
	Message string
	Status  Status
}

func (f *Failure) Error() string {
	if f.Message == "" {
		return f.Status.Error()
	}
	return f.Status.Error() + ": " + f.Message
}

// StatusOf returns the wire status of err: 0 for nil, the carried code for a
// Status or *Failure and StatusException for anything else.
func StatusOf(err error) int32 {
	if err == nil {
		return int32(StatusOK)
	}
	var f *Failure
	if errors.As(err, &f) {
		return int32(f.Status)
	}
	var s Status
	if errors.As(err, &s) {
		return int32(s)
	}
	return int32(StatusException)
}

// Require returns nil when cond holds and a StatusException failure otherwise.
func Require(cond bool, msg ...string) error {
	if cond {
		return nil
	}
	return &Failure{Status: StatusException, Message: strings.Join(msg, " ")}
}

// MessageSink is implemented by hosts that record why an action failed.
type MessageSink interface {
	Fail(status int32, message string)
}

// Finish converts the result of an action into the status it exports. When
// the installed host implements MessageSink it receives the failure text.
func Finish(err error) int32 {
	code := StatusOf(err)
	if code == int32(StatusOK) {
		return code
	}
	if sink, ok := current.V0.(MessageSink); ok {
		sink.Fail(code, err.Error())
	}
	return code
}
