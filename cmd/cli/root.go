// Package cmd implements the groupahpdss CLI: a single solve behavior
// exposed directly on the root command, plus a serve subcommand for the
// optional HTTP API. Grounded on the teacher's cmd/cli/root.go
// (cobra.Command, Execute) trimmed to this engine's flag surface.
package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"groupahpdss/internal/apperr"
	"groupahpdss/internal/config"
	"groupahpdss/internal/document"
	"groupahpdss/internal/engine"
	"groupahpdss/internal/logger"
)

var (
	inputFile       string
	outputPath      string
	autoMode        bool
	withSensitivity bool
	withValidation  bool
)

var rootCmd = &cobra.Command{
	Use:   "groupahpdss",
	Short: "Group AHP / AEM-COM decision support engine",
	Long: `groupahpdss runs a group Analytic Hierarchy Process pipeline
augmented with the AEM-COM consensus-reduction algorithm over a JSON
input document, producing a ranked set of alternatives and a
consensus report.`,
	RunE: runSolve,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "input JSON document path")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file or directory path")
	rootCmd.Flags().BoolVarP(&autoMode, "auto", "a", false, "non-interactive: run and exit without prompting")
	rootCmd.Flags().BoolVar(&withSensitivity, "sensitivity", false, "include the sensitivity report in the output document")
	rootCmd.Flags().BoolVar(&withValidation, "validation", true, "include the validation report in the output document")
}

// Execute runs the root command, translating *apperr.Error values into
// the exit codes spec.md §6 documents: 2 for usage errors, 1 for any
// other fatal (ingest/structural) error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Code == apperr.Usage {
		return 2
	}
	return 1
}

func runSolve(cmd *cobra.Command, args []string) error {
	if autoMode && inputFile == "" {
		return apperr.New(apperr.Usage, "-a/--auto requires -f/--file")
	}
	if inputFile == "" {
		cmd.Println("no -f/--file supplied; nothing to do. Run with --help for usage.")
		return nil
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return apperr.Wrap(apperr.InputMalformed, "reading input file", err)
	}

	cfg := config.Load()
	opts := document.Options{IncludeSensitivity: withSensitivity, IncludeValidation: withValidation}

	runID := uuid.New().String()
	if log, logErr := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format); logErr == nil {
		defer log.Sync()
		log.Info("run started", zap.String("run_id", runID), zap.String("file", inputFile))
		defer log.Info("run finished", zap.String("run_id", runID))
	}

	doc, err := engine.Solve(data, cfg, opts)
	if err != nil {
		return err
	}

	if autoMode {
		return writeDocument(doc, outputPath)
	}
	return runInteractive(doc)
}

// runInteractive prints a short summary and asks whether to write the
// result to disk -- the minimal non-core menu spec.md §6 requires to
// exist for the non "-a" path, without reimplementing a full TUI.
func runInteractive(doc *document.Document) error {
	summary := doc.Result.AemCom.Summary
	fmt.Println("=== Group AHP / AEM-COM summary ===")
	fmt.Printf("problem:            %s\n", doc.Problem.Name)
	fmt.Printf("permissibility:     %.4g\n", summary.Permissibility)
	fmt.Printf("gcompi initial:     %.6g\n", summary.GCompiInitialTotal)
	fmt.Printf("gcompi final:       %.6g\n", summary.GCompiFinalTotal)
	fmt.Printf("gcompi min (target):%.6g\n", summary.GCompiMinTotal)
	fmt.Printf("improvement:        %.2f%%\n", summary.ImprovementTotal)
	if doc.Result.Ahp != nil {
		fmt.Println("global alternative ranking:")
		for id, w := range doc.Result.Ahp.GlobalAltWeights {
			fmt.Printf("  %-20s %.4f\n", id, w)
		}
	}

	fmt.Print("\nwrite result to disk? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if answer == "y\n" || answer == "Y\n" || answer == "y\r\n" {
		return writeDocument(doc, outputPath)
	}
	fmt.Println("not writing; done.")
	return nil
}

func writeDocument(doc *document.Document, outPath string) error {
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperr.Wrap(apperr.InputMalformed, "encoding output document", err)
	}

	target := resolveOutputPath(outPath)
	if dir := filepath.Dir(target); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperr.Wrap(apperr.Usage, "creating output directory", err)
		}
	}

	if err := os.WriteFile(target, body, 0o644); err != nil {
		return apperr.Wrap(apperr.Usage, "writing output file", err)
	}

	fmt.Println("wrote", target)
	return nil
}

// resolveOutputPath implements spec.md §6's -o semantics: a path ending
// in ".json" is used as-is; anything else (including an empty string)
// is treated as a directory and a timestamped filename is generated
// inside it.
func resolveOutputPath(outPath string) string {
	if filepath.Ext(outPath) == ".json" {
		return outPath
	}
	dir := outPath
	if dir == "" {
		dir = "."
	}
	name := time.Now().UTC().Format("20060102_150405") + ".json"
	return filepath.Join(dir, name)
}
