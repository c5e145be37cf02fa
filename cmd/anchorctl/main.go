package main

import (
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/cli"
)

func main() {
	cli.Execute()
}
