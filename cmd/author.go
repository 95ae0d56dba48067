package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/gbianchi/impara/internal/authoring"
	"github.com/gbianchi/impara/internal/config"
	"github.com/gbianchi/impara/internal/llm"
	"github.com/gbianchi/impara/internal/store"
	"github.com/spf13/cobra"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Generate a new content pack with an LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		topic, _ := cmd.Flags().GetString("topic")
		level, _ := cmd.Flags().GetString("level")
		guidance, _ := cmd.Flags().GetString("guidance")
		outDir, _ := cmd.Flags().GetString("out")

		cfg, err := config.Load(nil)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if outDir == "" {
			outDir = cfg.PacksDir
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		llmCfg, ok := llm.DiscoverConfig()
		if !ok {
			llmCfg = llm.ConfigFromEnv()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		gen := authoring.New(provider, authoring.DefaultConfig())
		fmt.Printf("Generating pack for %s / %s / level %s...\n", subject, topic, level)

		pack, err := gen.Generate(ctx, authoring.Request{
			Subject:  subject,
			Topic:    topic,
			Level:    level,
			Guidance: guidance,
		})
		if err != nil {
			return fmt.Errorf("generate pack: %w", err)
		}

		path, err := authoring.WritePack(outDir, pack)
		if err != nil {
			return fmt.Errorf("write pack: %w", err)
		}

		fmt.Println("Pack written to", path)
		fmt.Println("It will be picked up the next time the game starts.")
		return nil
	},
}

func init() {
	authorCmd.Flags().String("subject", "", "Subject of the new pack (required)")
	authorCmd.Flags().String("topic", "", "Topic of the new pack (required)")
	authorCmd.Flags().String("level", "1", "Difficulty level key")
	authorCmd.Flags().String("guidance", "", "Extra instructions for the generator")
	authorCmd.Flags().String("out", "", "Output directory (defaults to the configured packs dir)")
	authorCmd.MarkFlagRequired("subject")
	authorCmd.MarkFlagRequired("topic")
}
