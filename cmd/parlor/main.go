// Package main provides the parlor CLI.
package main

import "github.com/mesh-intelligence/parlor/internal/cli"

func main() {
	cli.Execute()
}
