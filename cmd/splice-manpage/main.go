package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/splice/cmd/splice"
	"github.com/arthur-debert/splice/internal/version"
)

func main() {
	rootCmd := splice.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "SPLICE",
		Section: "1",
		Source:  "splice " + version.Version,
		Manual:  "splice manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
