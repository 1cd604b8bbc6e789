package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"preizo/internal/bot"
	"preizo/internal/label"
	"preizo/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "preizo",
		Short:         "Printable shelf price tags",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("env-file", ".env", "Path to the environment variables file")
	root.PersistentFlags().String("format", "", "Output format (docx, pdf); overrides OUTPUT_FORMAT")

	root.AddCommand(serveCmd(), botCmd(), renderCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP form and download endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if _, err := a.connectRedis(ctx); err != nil {
				a.logger.Error("Failed to connect to Redis", zap.Error(err))
				return err
			}

			opts := server.Options{
				Addr:         a.cfg.HTTP.Addr,
				ReadTimeout:  a.cfg.HTTP.ReadTimeout,
				WriteTimeout: a.cfg.HTTP.WriteTimeout,
				Metrics:      a.metrics,
			}
			if l := a.limiter(); l != nil {
				opts.Limiter = l
			}

			srv := server.New(a.gen, opts, a.logger)
			if err := srv.Run(ctx, a.cfg.ShutdownTimeout); err != nil {
				a.logger.Error("HTTP server stopped with error", zap.Error(err))
				return err
			}
			a.logger.Info("HTTP server shutdown gracefully")
			return nil
		},
	}
}

func botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if a.cfg.Telegram.Token == "" {
				return fmt.Errorf("TELEGRAM_TOKEN is required")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			redisClient, err := a.connectRedis(ctx)
			if err != nil {
				a.logger.Error("Failed to connect to Redis", zap.Error(err))
				return err
			}

			deps := bot.Deps{
				Generator: a.gen,
				Metrics:   a.metrics,
			}
			if redisClient != nil {
				deps.Drafts = bot.NewRedisDrafts(redisClient)
			}
			if l := a.limiter(); l != nil {
				deps.Limiter = l
			}

			tgBot, err := bot.New(ctx, a.cfg.Telegram.Token, a.cfg.Telegram.Debug, deps, a.logger)
			if err != nil {
				a.logger.Error("Failed to create bot", zap.Error(err))
				return err
			}

			if err := tgBot.Start(ctx); err != nil {
				a.logger.Error("Bot stopped with error", zap.Error(err))
				return err
			}
			a.logger.Info("Bot shutdown gracefully")
			return nil
		},
	}
}

// flagName turns a contract field into a flag name (quantity_per_pack ->
// quantity-per-pack).
func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

// fieldValues collects the contract fields whose flags were set.
func fieldValues(flags *pflag.FlagSet) map[string]string {
	values := make(map[string]string)
	for _, f := range label.Fields {
		if fl := flags.Lookup(flagName(f)); fl != nil && fl.Changed {
			values[f] = fl.Value.String()
		}
	}
	return values
}

func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write one price tag to a file",
		Example: `  preizo render --department "Getränke" --product-type Aktion \
    --manufacturer Bauer --product-name Apfelsaft --quantity-per-pack 1 --unit l \
    --price 1,99 --deposit 0,25 --format pdf`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			raw, err := label.RawFromMap(fieldValues(cmd.Flags()))
			if err != nil {
				return err
			}

			doc, err := a.gen.Generate(raw)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = doc.Filename
			} else if info, err := os.Stat(out); err == nil && info.IsDir() {
				out = filepath.Join(out, doc.Filename)
			}
			if err := os.WriteFile(out, doc.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	for _, f := range label.Fields {
		cmd.Flags().String(flagName(f), "", "Value of the "+f+" field")
	}
	cmd.Flags().StringP("out", "o", "", "Output file or directory (default: derived filename)")
	return cmd
}
