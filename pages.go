package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/oluyale/portfolio/internal/content"
	"github.com/oluyale/portfolio/internal/lottie"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the pages and the content block each one renders",
	RunE: func(cmd *cobra.Command, args []string) error {
		portfolio, err := content.Load(cfg.ContentPath)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PAGE\tURL\tTEMPLATE\tANIMATION")
		for _, b := range content.NewRegistry().Blocks() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Page, b.Page.Href(), b.Template, orNone(portfolio.AnimationURL(b.Page)))
		}
		return w.Flush()
	},
}

var checkAnimationsCmd = &cobra.Command{
	Use:   "check-animations",
	Short: "Fetch every configured animation and report which are available",
	RunE: func(cmd *cobra.Command, args []string) error {
		portfolio, err := content.Load(cfg.ContentPath)
		if err != nil {
			return err
		}
		fetcher := lottie.New(
			lottie.WithTimeout(cfg.FetchTimeout),
			lottie.WithCacheTTL(0),
			lottie.WithLogger(logger),
		)
		ctx := background(cmd)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PAGE\tSTATUS\tURL")
		for _, b := range content.NewRegistry().Blocks() {
			url := portfolio.AnimationURL(b.Page)
			status := "absent"
			if _, ok := fetcher.Fetch(ctx, url); ok {
				status = "ok"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", b.Page, status, orNone(url))
		}
		return w.Flush()
	},
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(pagesCmd, checkAnimationsCmd)
}
