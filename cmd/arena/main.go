package main

import (
	"github.com/mcoot/schnapsen-go/internal/cli"
)

func main() {
	cli.Execute()
}
