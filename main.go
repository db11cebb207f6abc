package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		format     string
		flags      overrides
	)

	cmd := &cobra.Command{
		Use:   "immowatch",
		Short: "Print listing page elements that mention a neighbourhood",
		Long: `immowatch fetches each configured listings page once, selects every
element of the configured tag and prints the text of the ones containing
the configured match string.

Without --config a single built-in site is used. Settings are overridden
by IMMOWATCH_* variables (also read from .env) and then by flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnv(".env"); err != nil {
				return err
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg.apply(envOverrides())
			cfg.apply(flags)
			if format != "" {
				cfg.Format = format
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			out, err := newPrinter(cfg.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			crawlers := make([]Crawler, 0, len(cfg.Sites))
			for _, s := range cfg.Sites {
				crawlers = append(crawlers, newListingCrawler(s, out))
			}

			return runAll(crawlers, out)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file listing the sites to check")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text or csv")
	cmd.Flags().StringVar(&flags.URL, "url", "", "listings page to fetch")
	cmd.Flags().StringVarP(&flags.Tag, "tag", "t", "", "tag of the elements to check, e.g. div or p")
	cmd.Flags().StringVarP(&flags.Match, "match", "m", "", "substring an element's text must contain")
	cmd.Flags().StringVar(&flags.ProbeURL, "probe", "", "extra page to request before the listings page")

	return cmd
}

// runAll runs every crawler even when one fails and reports the first error.
func runAll(crawlers []Crawler, out printer) error {
	var (
		matches  int
		firstErr error
	)
	for _, c := range crawlers {
		n, err := c.run()
		matches += n
		if err != nil {
			log.Printf("!! %v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if err := out.flush(); err != nil && firstErr == nil {
		firstErr = err
	}

	log.Println("Finished Crawling!")
	log.Printf("Number of sites crawled: %d", len(crawlers))
	log.Printf("Number of matches: %d", matches)

	return firstErr
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
