// Package main provides the CLI entry point for critic.
package main

import (
	"github.com/curatorsigma/critic/internal/cli"
)

func main() {
	cli.Execute()
}
