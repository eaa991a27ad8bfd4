package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/documind-ai/documind/internal/chat"
	"github.com/documind-ai/documind/internal/config"
	"github.com/documind-ai/documind/internal/ingest"
	"github.com/documind-ai/documind/internal/session"
	"github.com/documind-ai/documind/internal/tui"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat [pdf]",
		Short: "Start an interactive grounded chat session over a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			opts := tui.Options{
				Ingestor: ingest.NewIngestor(nil),
				// The credential is only checked when the user confirms the
				// outline; parsing works without a key.
				NewProvider: func(ctx context.Context) (chat.Provider, error) {
					if err := cfg.Validate(); err != nil {
						return nil, err
					}
					return chat.NewGemini(ctx, cfg.GeminiAPIKey, cfg.Model)
				},
				Temperature: float32(cfg.Temperature),
				InitialPath: path,
			}
			return tui.Run(session.New(), opts)
		},
	}
}
