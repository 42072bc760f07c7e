package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/types"
)

// ContractFile is the contract source of a scaffolded project.
const ContractFile = "contract.go"

var validName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

const goModTemplate = `module %s

go 1.22

require %s v0.1.0
`

const contractTemplate = `package main

import "%s"

//go:generate we generate contract.go

//we:action
func _constructor(init_value cdk.Boolean) error {
	return cdk.SetBool("value", init_value)
}

//we:action
func flip() error {
	value, err := cdk.GetBool("value")
	if err != nil {
		return err
	}
	return cdk.SetBool("value", !value)
}

func main() {}
`

const gitignoreTemplate = `# Build output
target/

# Used by macOS' file system to track custom attributes of containing folder
.DS_Store

# Editors' specific files
.idea/
.vscode/
`

// New creates a contract project named name under parent and returns its
// directory. It refuses to touch a directory that already holds a go.mod.
func New(parent, name string) (string, error) {
	if !validName.MatchString(name) {
		return "", errors.InvalidInput(errors.PhaseBuild, "invalid project name "+name)
	}

	dir := filepath.Join(parent, name)
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
		return "", errors.New(errors.PhaseBuild, errors.KindDuplicate).
			Path(name).
			Detail("a Go module already exists in %s", dir).
			Build()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.IO(errors.PhaseBuild, dir, err)
	}

	files := []struct {
		name string
		data string
	}{
		{"go.mod", fmt.Sprintf(goModTemplate, name, modulePath())},
		{ContractFile, fmt.Sprintf(contractTemplate, types.SDKPackage)},
		{".gitignore", gitignoreTemplate},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.data), 0o644); err != nil {
			return "", errors.IO(errors.PhaseBuild, path, err)
		}
	}

	Logger().Info("created contract", zap.String("name", name), zap.String("dir", dir))
	return dir, nil
}
