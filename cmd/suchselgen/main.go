package main

import "github.com/mkoehn/suchselgen/internal/cli"

func main() {
	cli.Execute()
}
