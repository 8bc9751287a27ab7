// main is the entry point for the rolodex CLI.
package main

import (
	"github.com/huangsam/rolodex/cmd"
	"github.com/huangsam/rolodex/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("rolodex", err)
	}
}
