package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/katalvlaran/anticlust/anticluster"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errMutuallyExclusiveFlags = errors.New("anticlust: --file and --runs are mutually exclusive")

// runDocument is the JSON shape of one partitioning problem. Variant
// selects which core entry point handles it. Both variants read n, k,
// frequencies and clusters; variance also reads m and data, diversity
// reads dist and the category fields.
type runDocument struct {
	Variant             string    `json:"variant"`
	N                   int       `json:"n"`
	M                   int       `json:"m,omitempty"`
	K                   int       `json:"k"`
	Frequencies         []int     `json:"frequencies"`
	Clusters            []int     `json:"clusters"`
	Data                []float64 `json:"data,omitempty"`
	Dist                []float64 `json:"dist,omitempty"`
	UseCategories       bool      `json:"use_categories,omitempty"`
	Categories          []int     `json:"categories,omitempty"`
	CategoryFrequencies []int     `json:"category_frequencies,omitempty"`
}

// runOutput is the JSON shape written back per document.
type runOutput struct {
	Source              string  `json:"source,omitempty"`
	Clusters            []int   `json:"clusters,omitempty"`
	Objective           float64 `json:"objective,omitempty"`
	SwapsCommitted      int     `json:"swaps_committed,omitempty"`
	CandidatesEvaluated int     `json:"candidates_evaluated,omitempty"`
	Error               string  `json:"error,omitempty"`
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one or more partitioning problems from JSON run documents",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("file", "f", "", "path to a single JSON run document (default: stdin)")
	runCmd.Flags().String("runs", "", "path to a directory of JSON run documents, processed concurrently")
	runCmd.Flags().IntP("workers", "w", 0, "worker pool size for --runs (0 = runtime.NumCPU())")
}

func runRun(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	runsDir, _ := cmd.Flags().GetString("runs")
	workers, _ := cmd.Flags().GetInt("workers")

	if file != "" && runsDir != "" {
		return errMutuallyExclusiveFlags
	}

	if runsDir != "" {
		return runBatch(runsDir, workers)
	}

	return runSingle(file)
}

// runSingle reads one document from file (or stdin when file is empty),
// runs it, and writes the resulting runOutput as JSON to stdout.
func runSingle(file string) error {
	raw, err := readDocument(file)
	if err != nil {
		return fmt.Errorf("anticlust: reading run document: %w", err)
	}

	var doc runDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("anticlust: parsing run document: %w", err)
	}

	out := execute(doc)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// runBatch processes every *.json document under dir through a bounded
// worker pool of independent calls on distinct buffers, then, once all of
// them have finished, writes one NDJSON line per document to stdout in
// directory order.
func runBatch(dir string, workers int) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("anticlust: reading --runs directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	log.WithFields(logrus.Fields{"documents": len(paths), "workers": workers}).Info("anticlust: starting batch run")

	results := make([]runOutput, len(paths))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = executeFile(path)
		}(i, path)
	}
	wg.Wait()

	enc := json.NewEncoder(os.Stdout)
	for _, out := range results {
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("anticlust: writing batch result: %w", err)
		}
	}

	return nil
}

func executeFile(path string) runOutput {
	raw, err := os.ReadFile(path)
	if err != nil {
		return runOutput{Source: path, Error: err.Error()}
	}

	var doc runDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return runOutput{Source: path, Error: err.Error()}
	}

	out := execute(doc)
	out.Source = path

	return out
}

// execute dispatches doc to the variance or diversity entry point and
// adapts its Result into a runOutput.
func execute(doc runDocument) runOutput {
	clusters := append([]int(nil), doc.Clusters...)

	var result anticluster.Result
	var err error

	switch doc.Variant {
	case "variance":
		result, err = anticluster.Variance(doc.Data, doc.N, doc.M, doc.K, doc.Frequencies, clusters, log)
	case "diversity":
		opts := anticluster.DiversityOptions{
			UseCategories:       doc.UseCategories,
			Categories:          doc.Categories,
			CategoryFrequencies: doc.CategoryFrequencies,
			Logger:              log,
		}
		result, err = anticluster.Diversity(doc.Dist, doc.N, doc.K, doc.Frequencies, clusters, opts)
	default:
		return runOutput{Error: fmt.Sprintf("anticlust: unknown variant %q (want \"variance\" or \"diversity\")", doc.Variant)}
	}

	if err != nil {
		return runOutput{Error: err.Error()}
	}

	return runOutput{
		Clusters:            result.Clusters,
		Objective:           result.Objective,
		SwapsCommitted:      result.SwapsCommitted,
		CandidatesEvaluated: result.CandidatesEvaluated,
	}
}

func readDocument(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(file)
}
