package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     = logrus.New()
)

// rootCmd is the base command when anticlust is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "anticlust",
	Short: "Exchange-based anticlustering optimizer",
	Long: `anticlust partitions N elements into K fixed-size groups that maximize
heterogeneity, via a single-pass deterministic exchange local search.

It reads a JSON run document (or a directory of them) describing one or
more partitioning problems, invokes the variance or diversity entry point
per document, and writes the optimized assignment back as JSON.`,
}

// Execute adds all child commands to rootCmd and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug-level structured logging")

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	cobra.OnInitialize(func() {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}
	})
}
