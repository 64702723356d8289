package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/splice/cmd/splice"
	"github.com/arthur-debert/splice/pkg/errors"
	"github.com/arthur-debert/splice/pkg/ui/styles"
)

func main() {
	rootCmd := splice.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))

		// Usage mistakes get the help text, build failures do not
		if errors.IsErrorCode(err, errors.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Help()
		}

		os.Exit(1)
	}
}
