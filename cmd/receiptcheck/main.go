package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/dmitrymomot/receiptcheck"
	"github.com/dmitrymomot/receiptcheck/pkg/config"
	"github.com/dmitrymomot/receiptcheck/pkg/logger"
	"github.com/dmitrymomot/receiptcheck/pkg/schema"
	"github.com/dmitrymomot/receiptcheck/pkg/verdict"
)

type cliConfig struct {
	LogLevel  string `env:"RECEIPTCHECK_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"RECEIPTCHECK_LOG_FORMAT" envDefault:"text"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out *os.File) int {
	fs := flag.NewFlagSet("receiptcheck", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "path to a JSON Schema file (optional)")
	profilePath := fs.String("profile", "", "path to a YAML validation profile (optional)")
	reportPath := fs.String("json-report", "", "write the verdict as JSON to this file")
	quiet := fs.Bool("quiet", false, "suppress the console report")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: receiptcheck [flags] <receipt.json|receipt.xml>")
		return 2
	}
	receiptPath := fs.Arg(0)

	var cfg cliConfig
	config.MustLoad(&cfg)
	log := logger.New(
		logger.WithLevel(parseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
	)

	data, err := os.ReadFile(receiptPath)
	if err != nil {
		log.Error("cannot read receipt", "path", receiptPath, "error", err)
		return 1
	}

	opts := []receiptcheck.Option{receiptcheck.WithLogger(log)}
	if *profilePath != "" {
		profile, err := receiptcheck.LoadProfile(*profilePath)
		if err != nil {
			log.Error("cannot load profile", "path", *profilePath, "error", err)
			return 1
		}
		opts = append(opts, receiptcheck.WithProfile(profile))
	} else if profile, err := receiptcheck.LoadProfileFromEnv(); err == nil {
		opts = append(opts, receiptcheck.WithProfile(profile))
	}
	if *schemaPath != "" {
		checker, err := schema.NewJSONSchemaChecker(*schemaPath)
		if err != nil {
			log.Error("cannot compile schema", "path", *schemaPath, "error", err)
			return 1
		}
		opts = append(opts, receiptcheck.WithChecker(checker))
	}

	v := receiptcheck.New(opts...)
	ctx := context.Background()

	var vd verdict.Verdict
	if strings.EqualFold(filepath.Ext(receiptPath), ".xml") {
		vd, err = v.ValidateXML(ctx, receiptPath, data)
	} else {
		vd, err = v.ValidateJSON(ctx, receiptPath, data)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		return 1
	}

	if !*quiet {
		printReport(out, vd)
	}
	if *reportPath != "" {
		if err := writeJSONReport(*reportPath, vd); err != nil {
			log.Error("cannot write report", "path", *reportPath, "error", err)
			return 1
		}
		fmt.Fprintf(out, "Report saved to: %s\n", *reportPath)
	}

	if vd.OverallValid {
		return 0
	}
	return 1
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}

func writeJSONReport(path string, vd verdict.Verdict) error {
	data, err := json.MarshalIndent(vd, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printReport(out *os.File, vd verdict.Verdict) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(out, line)
	fmt.Fprintln(out, "RECEIPT VALIDATION REPORT")
	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "File: %s\n", vd.Source)
	fmt.Fprintf(out, "Timestamp: %s\n", vd.Timestamp.Format("2006-01-02T15:04:05"))
	fmt.Fprintf(out, "Overall Status: %s\n\n", status(vd.OverallValid, "VALID", "INVALID"))

	switch {
	case vd.SchemaValid == nil:
		fmt.Fprintln(out, "Schema Validation: NOT ATTEMPTED (no schema supplied)")
	default:
		fmt.Fprintf(out, "Schema Validation: %s\n", status(*vd.SchemaValid, "PASSED", "FAILED"))
	}
	fmt.Fprintf(out, "Business Rules: %s\n", status(vd.RulesValid, "PASSED", "FAILED"))
	fmt.Fprintf(out, "Data Types: %s\n\n", status(vd.TypesValid, "PASSED", "FAILED"))

	fmt.Fprintln(out, "CALCULATED TOTALS:")
	fmt.Fprintf(out, "  Items Count: %d\n", vd.Totals.ItemCount)
	fmt.Fprintf(out, "  Calculated Subtotal: %.2f\n", vd.Totals.CalculatedSubtotal)
	fmt.Fprintf(out, "  Taxable Subtotal: %.2f\n\n", vd.Totals.TaxableSubtotal)

	if errs := vd.Findings.Errors(); len(errs) > 0 {
		fmt.Fprintln(out, "ERRORS:")
		for i, f := range errs {
			fmt.Fprintf(out, "  %d. %s\n", i+1, f.Message)
		}
		fmt.Fprintln(out)
	}
	if warns := vd.Findings.Warnings(); len(warns) > 0 {
		fmt.Fprintln(out, "WARNINGS:")
		for i, f := range warns {
			fmt.Fprintf(out, "  %d. %s\n", i+1, f.Message)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, line)
}

func status(ok bool, pass, fail string) string {
	if ok {
		return "✓ " + pass
	}
	return "✗ " + fail
}
