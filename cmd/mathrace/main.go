package main

import (
	"github.com/mathrace/mathrace-go/internal/cli"
)

func main() {
	cli.Execute()
}
