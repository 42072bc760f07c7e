package wat

import (
	"os"

	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/wat/internal/encoder"
	"github.com/wippyai/wevm-cdk/wat/internal/parser"
	"github.com/wippyai/wevm-cdk/wat/internal/token"
)

// Compile assembles WAT source into a binary module.
func Compile(source string) ([]byte, error) {
	tokens := token.Tokenize(source)
	mod, err := parser.New(tokens).Parse()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBuild, errors.KindMalformed, err, "wat")
	}
	return encoder.Encode(mod), nil
}

// CompileFile assembles the text module at path.
func CompileFile(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseBuild, path, err)
	}
	bin, err := Compile(string(src))
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.Pos = path
		}
		return nil, err
	}
	return bin, nil
}
