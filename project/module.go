package project

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

// modulePath is the module path of the SDK, derived from its import path.
func modulePath() string {
	return strings.TrimSuffix(types.SDKPackage, "/cdk")
}

// ModuleName returns the last element of the module path declared in
// dir/go.mod. It names the build artifacts.
func ModuleName(dir string) (string, error) {
	p := filepath.Join(dir, "go.mod")
	data, err := os.ReadFile(p)
	if err != nil {
		return "", errors.IO(errors.PhaseBuild, p, err)
	}
	mod := modfile.ModulePath(data)
	if mod == "" {
		return "", errors.New(errors.PhaseBuild, errors.KindMalformed).
			Detail("%s declares no module", p).
			Build()
	}
	return path.Base(mod), nil
}
