package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	mongostore "github.com/bgrbarbosa/product-catalog/internal/infrastructure/db/mongo"
)

func newEmailCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Inspect product list emails",
	}

	var (
		destination string
		limit       int64
	)
	history := &cobra.Command{
		Use:   "history",
		Short: "List the most recent email dispatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkHistoryLimit(limit); err != nil {
				return err
			}
			if a.cfg.Mongo.URI == "" {
				return errors.New("MONGO_URI is not set, email audit is disabled")
			}
			client, db, err := mongostore.Connect(cmd.Context(), mongostore.Config{
				URI:      a.cfg.Mongo.URI,
				Database: a.cfg.Mongo.Database,
				AppName:  serviceName,
			})
			if err != nil {
				return err
			}
			defer client.Disconnect(context.Background())

			dispatches, err := mongostore.NewDispatchLog(db).Recent(cmd.Context(), destination, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SENT AT\tDESTINATION\tPRODUCTS\tRESULT")
			for _, d := range dispatches {
				result := "sent"
				if !d.Success {
					result = "failed: " + d.Error
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", d.SentAt.Format(time.RFC3339), d.Destination, d.Products, result)
			}
			return w.Flush()
		},
	}
	history.Flags().StringVar(&destination, "destination", "", "Only show dispatches to this address")
	history.Flags().Int64Var(&limit, "limit", 20, "Maximum number of entries")

	cmd.AddCommand(history)
	return cmd
}

func checkHistoryLimit(limit int64) error {
	if limit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", limit)
	}
	return nil
}
