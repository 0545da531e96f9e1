// Package main provides the entrypoint for dakota-leads.
package main

import (
	"os"

	"github.com/surfingcloud9/dakota-leads/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
