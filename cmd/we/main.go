package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newApp(os.Stdout)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, problemStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
