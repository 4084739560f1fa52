package main

import (
	"github.com/dotcommander/perflint/cmd"
)

func main() {
	cmd.Execute()
}
