package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/documind-ai/documind/internal/ingest"
)

func outlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline <pdf>",
		Short: "Extract text and print the detected outline without starting a chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := ingest.NewIngestor(nil).Ingest(data)
			if err != nil {
				return err
			}
			log.Info("parsed document", "file", args[0], "pages", doc.Pages, "toc_entries", len(doc.TOC))

			out := struct {
				Pages int      `json:"pages"`
				Chars int      `json:"chars"`
				TOC   []string `json:"toc"`
			}{doc.Pages, len(doc.FullText), doc.TOC}
			b, _ := json.MarshalIndent(out, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}
