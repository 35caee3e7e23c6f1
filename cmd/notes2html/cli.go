package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	notes2html "github.com/alnah/go-notes2html"
)

// requiredArgs is the number of positional arguments: two input note files
// and the output HTML path.
const requiredArgs = 3

// Sentinel errors for CLI operations.
var (
	ErrInvalidArgs = errors.New("expected <notes1.txt> <notes2.txt> <output.html>")
	ErrReadInput   = errors.New("failed to read input file")
	ErrWriteOutput = errors.New("failed to write output file")
)

// converterService is the subset of the library surface the CLI drives.
// Satisfied by *notes2html.Converter; tests substitute a fake.
type converterService interface {
	Convert(ctx context.Context, input notes2html.Input) (*notes2html.Result, error)
	ExportPDF(ctx context.Context, htmlContent string) ([]byte, error)
}

var _ converterService = (*notes2html.Converter)(nil)

// run reads the two note files, converts them, and writes the HTML output
// (and optionally a PDF). Progress goes to stderr unless quiet is set.
func run(s *settings, args []string, svc converterService, stderr io.Writer) error {
	if len(args) != requiredArgs {
		return fmt.Errorf("%w: got %d arguments", ErrInvalidArgs, len(args))
	}
	outputPath := args[2]

	input := notes2html.Input{
		Title:      s.title,
		Subtitle:   s.subtitle,
		FooterText: s.footerText,
	}
	for i := 0; i < notes2html.DocumentCount; i++ {
		text, err := os.ReadFile(args[i]) // #nosec G304 -- user-chosen input path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		input.Docs[i] = notes2html.Document{Label: s.labels[i], Text: string(text)}
		if s.verbose {
			fmt.Fprintf(stderr, "Read %s (%d bytes)\n", args[i], len(text))
		}
	}

	result, err := svc.Convert(context.Background(), input)
	if err != nil {
		return err
	}
	if s.verbose {
		for i, outline := range result.Outlines {
			fmt.Fprintf(stderr, "Tab %q: %d sections\n", s.labels[i], len(outline))
			for _, h := range outline {
				fmt.Fprintf(stderr, "  %s %s\n", h.Number, h.Title)
			}
		}
	}

	if err := os.WriteFile(outputPath, []byte(result.HTML), 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !s.quiet {
		fmt.Fprintf(stderr, "Created %s\n", outputPath)
	}

	if s.pdfPath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		pdf, err := svc.ExportPDF(ctx, result.HTML)
		if err != nil {
			return err
		}
		if err := os.WriteFile(s.pdfPath, pdf, 0o600); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !s.quiet {
			fmt.Fprintf(stderr, "Created %s\n", s.pdfPath)
		}
	}
	return nil
}
