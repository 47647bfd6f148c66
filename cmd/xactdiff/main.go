package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"xactdiff/internal/app"
	"xactdiff/internal/config"
	"xactdiff/internal/csvexport"
	"xactdiff/internal/domain"
	"xactdiff/internal/logging"
	"xactdiff/internal/service"
)

func main() {
	_ = godotenv.Load()

	cliApp := &cli.App{
		Name:  "xactdiff",
		Usage: "Compare two Xactimate PDF estimates line by line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"XACTDIFF_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			compareCommand(),
			inspectCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Aliases:   []string{"c"},
		Usage:     "Reconcile two estimates and write the comparison table",
		ArgsUsage: "<first.pdf> <second.pdf>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (defaults to stdout for tsv)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format: tsv or xlsx",
				Value:   string(domain.ExportFormatTSV),
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("compare needs exactly two PDF paths", 2)
			}
			format := domain.ExportFormat(strings.ToLower(c.String("format")))
			if _, ok := domain.ExportContentTypes[format]; !ok {
				return cli.Exit(fmt.Sprintf("unsupported format %q", c.String("format")), 2)
			}
			out := c.String("out")
			if out == "" && format == domain.ExportFormatXLSX {
				out = csvexport.BuildFilename(csvexport.DefaultBaseName, format)
			}

			a, err := newApp(c)
			if err != nil {
				return err
			}

			first, closeFirst, err := openUpload(c.Args().Get(0))
			if err != nil {
				return err
			}
			defer closeFirst()
			second, closeSecond, err := openUpload(c.Args().Get(1))
			if err != nil {
				return err
			}
			defer closeSecond()

			ctx := c.Context
			report, err := a.Comparisons.CompareFiles(ctx, first, second)
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"matching":    report.MatchingItems,
				"differences": report.Differences,
				"total":       report.TotalItems,
			}).Info("comparison complete")

			return writeReport(ctx, a.Comparisons, report, format, out)
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Aliases:   []string{"i"},
		Usage:     "Print the extracted text of a PDF and the line items parsed from it",
		ArgsUsage: "<estimate.pdf>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "print only the extraction diagnostics",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("inspect needs exactly one PDF path", 2)
			}
			a, err := newApp(c)
			if err != nil {
				return err
			}

			path := c.Args().First()
			input, closeFn, err := openUpload(path)
			if err != nil {
				return err
			}
			report, err := a.Estimates.Debug(c.Context, input)
			closeFn()
			if err != nil {
				return err
			}
			if c.Bool("raw") {
				return printJSON(c.App.Writer, report)
			}

			input, closeFn, err = openUpload(path)
			if err != nil {
				return err
			}
			defer closeFn()
			doc, err := a.Estimates.Parse(c.Context, input)
			if err != nil {
				return err
			}
			return printJSON(c.App.Writer, struct {
				Extraction *service.DebugReport  `json:"extraction"`
				Document   *domain.Document      `json:"document"`
				Totals     domain.DocumentTotals `json:"totals"`
			}{report, doc, doc.Totals()})
		},
	}
}

func newApp(c *cli.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Log.Level = c.String("log-level")
	cfg.Log.Format = "text"
	logging.Init(cfg.Log)
	log.SetOutput(c.App.ErrWriter)
	return app.New(cfg)
}

// openUpload opens path as an upload; the returned func closes the file.
func openUpload(path string) (service.UploadInput, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return service.UploadInput{}, nil, fmt.Errorf("open %s: %w", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return service.UploadInput{}, nil, fmt.Errorf("stat %s: %w", path, err)
	}
	return service.UploadInput{
		Filename: filepath.Base(path),
		Size:     info.Size(),
		Body:     f,
	}, func() { f.Close() }, nil
}

func writeReport(ctx context.Context, svc service.ComparisonService, report *domain.ComparisonReport, format domain.ExportFormat, out string) error {
	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	if err := svc.Export(ctx, report.ID, format, w); err != nil {
		return err
	}
	if out != "" {
		log.WithField("path", out).Info("report written")
	}
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
