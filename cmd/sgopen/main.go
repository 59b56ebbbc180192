package main

import "github.com/danielmartin/emacs-sourcegraph/internal/cli"

func main() {
	cli.Execute()
}
