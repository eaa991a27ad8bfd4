package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:     "documind",
		Short:   "Chat with a document through a persona-scoped, grounded AI session",
		Version: version,
	}

	root.AddCommand(chatCmd())
	root.AddCommand(outlineCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
