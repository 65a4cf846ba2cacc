// parse is the command-line front end: parse a single message, import
// a backup dump, or list recently stored transactions.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dvloznov/sms-ledger/internal/config"
	"github.com/dvloznov/sms-ledger/internal/engine"
	"github.com/dvloznov/sms-ledger/internal/importer"
	"github.com/dvloznov/sms-ledger/internal/logger"
	"github.com/dvloznov/sms-ledger/internal/store/sqlite"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "parse",
		Short:         "Turn bank notification messages into transaction records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config")

	root.AddCommand(newMessageCmd())
	root.AddCommand(newBackupCmd(&configPath))
	root.AddCommand(newRecentCmd(&configPath))
	root.AddCommand(newVersionCmd())
	return root
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newMessageCmd() *cobra.Command {
	var (
		sender string
		body   string
		at     string
	)

	cmd := &cobra.Command{
		Use:   "message",
		Short: "Parse one message and print the record as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			receivedAt := time.Now().UTC()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --time: %w", err)
				}
				receivedAt = parsed
			}

			e := engine.New(zerolog.Nop())
			tx, outcome := e.Parse(body, sender, receivedAt)
			if outcome != engine.OutcomeParsed {
				fmt.Fprintf(cmd.OutOrStdout(), "no record: %s\n", outcome)
				return nil
			}

			out, err := json.MarshalIndent(tx, "", "  ")
			if err != nil {
				return fmt.Errorf("encode record: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&sender, "sender", "", "raw sender ID, e.g. AX-AXISBK-S")
	cmd.Flags().StringVar(&body, "body", "", "message body")
	cmd.Flags().StringVar(&at, "time", "", "receive time, RFC3339 (default now)")
	cmd.MarkFlagRequired("sender")
	cmd.MarkFlagRequired("body")
	return cmd
}

func newBackupCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file.xml | gs://bucket/object>",
		Short: "Import an SMS backup dump into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			store, err := sqlite.Open(cfg.Store.Path)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			log := logger.New()
			imp := importer.New(engine.New(log), store, nil, cfg.MatchWindow.Std(), log)

			res, err := imp.ImportSource(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"parsed %d, duplicates %d, skipped %d, malformed %d, candidates %d\n",
				res.Parsed, res.Duplicates, res.Skipped, res.Malformed, res.Candidates)
			return nil
		},
	}
}

func newRecentCmd(configPath *string) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recently received transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			store, err := sqlite.Open(cfg.Store.Path)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer store.Close()

			records, err := store.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s %10s %s  %-20s %s\n",
					r.ReceivedAt.Format(time.RFC3339), r.Bank,
					r.Tx.Amount.StringFixed(2), r.Tx.Currency,
					r.Tx.Type, r.Tx.Merchant)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum records to list")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
