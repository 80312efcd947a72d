package main

import (
	"os"

	"github.com/y123ash/Job-apply-AI-agent/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
