package main

// Notes:
// - run: we test the full read-convert-write flow with a fake converter.
//   Actual HTML generation is covered by the library's own tests, and PDF
//   export against a real browser is out of scope here.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	notes2html "github.com/alnah/go-notes2html"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - fake converter
// ---------------------------------------------------------------------------

type fakeConverter struct {
	gotInput   notes2html.Input
	gotHTML    string
	convertErr error
	exportErr  error
}

func (f *fakeConverter) Convert(_ context.Context, input notes2html.Input) (*notes2html.Result, error) {
	f.gotInput = input
	if f.convertErr != nil {
		return nil, f.convertErr
	}
	return &notes2html.Result{
		HTML: "<html>fake</html>",
		Outlines: [notes2html.DocumentCount][]notes2html.Heading{
			{
				{ID: "h-1", Number: "1", Title: "Introduction to Spring", Level: 1},
				{ID: "h-2", Number: "2", Title: "Dependency Injection", Level: 1},
			},
			{
				{ID: "h-1", Number: "1", Title: "Advanced Topics Overview", Level: 1},
			},
		},
		SectionCounts: [notes2html.DocumentCount]int{2, 1},
	}, nil
}

func (f *fakeConverter) ExportPDF(_ context.Context, htmlContent string) ([]byte, error) {
	f.gotHTML = htmlContent
	if f.exportErr != nil {
		return nil, f.exportErr
	}
	return []byte("%PDF-1.4 fake"), nil
}

func testSettings() *settings {
	return &settings{
		title:   "Study Notes",
		labels:  [notes2html.DocumentCount]string{"Notes I", "Notes II"},
		style:   notes2html.DefaultStyle,
		rules:   notes2html.DefaultRules(),
		timeout: 5 * time.Second,
		quiet:   true,
	}
}

func writeNoteFiles(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(first, []byte("1. Introduction to Spring\nBody text.\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("1. Advanced Topics Overview\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	return first, second, filepath.Join(dir, "out.html")
}

// ---------------------------------------------------------------------------
// TestRun - read, convert, write
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	t.Parallel()

	first, second, out := writeNoteFiles(t)
	fake := &fakeConverter{}

	var stderr bytes.Buffer
	if err := run(testSettings(), []string{first, second, out}, fake, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "<html>fake</html>" {
		t.Errorf("output = %q", data)
	}

	if fake.gotInput.Docs[0].Label != "Notes I" {
		t.Errorf("first label = %q", fake.gotInput.Docs[0].Label)
	}
	if fake.gotInput.Docs[1].Text != "1. Advanced Topics Overview\n" {
		t.Errorf("second doc text = %q", fake.gotInput.Docs[1].Text)
	}

	if stderr.Len() != 0 {
		t.Errorf("quiet run should not print progress, got %q", stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestRun_Progress - verbose and non-quiet output
// ---------------------------------------------------------------------------

func TestRun_Progress(t *testing.T) {
	t.Parallel()

	first, second, out := writeNoteFiles(t)
	s := testSettings()
	s.quiet = false
	s.verbose = true

	var stderr bytes.Buffer
	if err := run(s, []string{first, second, out}, &fakeConverter{}, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got := stderr.String()
	for _, want := range []string{"Read ", "2 sections", "1 sections", "1 Introduction to Spring", "Created " + out} {
		if !bytes.Contains([]byte(got), []byte(want)) {
			t.Errorf("progress output missing %q in %q", want, got)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRun_PDFExport - optional --pdf path
// ---------------------------------------------------------------------------

func TestRun_PDFExport(t *testing.T) {
	t.Parallel()

	first, second, out := writeNoteFiles(t)
	s := testSettings()
	s.pdfPath = filepath.Join(filepath.Dir(out), "out.pdf")

	fake := &fakeConverter{}
	if err := run(s, []string{first, second, out}, fake, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if fake.gotHTML != "<html>fake</html>" {
		t.Errorf("ExportPDF received %q", fake.gotHTML)
	}
	pdf, err := os.ReadFile(s.pdfPath)
	if err != nil {
		t.Fatalf("reading pdf: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("pdf output = %q", pdf)
	}
}

// ---------------------------------------------------------------------------
// TestRun_Errors - argument, read, convert, and write failures
// ---------------------------------------------------------------------------

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	first, second, out := writeNoteFiles(t)
	convertFailed := errors.New("convert failed")

	tests := []struct {
		name string
		args []string
		fake *fakeConverter
		want error
	}{
		{
			name: "wrong argument count",
			args: []string{first, second},
			fake: &fakeConverter{},
			want: ErrInvalidArgs,
		},
		{
			name: "missing input file",
			args: []string{filepath.Join(filepath.Dir(out), "absent.txt"), second, out},
			fake: &fakeConverter{},
			want: ErrReadInput,
		},
		{
			name: "converter failure propagates",
			args: []string{first, second, out},
			fake: &fakeConverter{convertErr: convertFailed},
			want: convertFailed,
		},
		{
			name: "unwritable output path",
			args: []string{first, second, filepath.Join(filepath.Dir(out), "no-such-dir", "out.html")},
			fake: &fakeConverter{},
			want: ErrWriteOutput,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := run(testSettings(), tt.args, tt.fake, &bytes.Buffer{})
			if !errors.Is(err, tt.want) {
				t.Errorf("run() error = %v, want %v", err, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWithHint - hint attachment for known failures
// ---------------------------------------------------------------------------

func TestWithHint(t *testing.T) {
	t.Parallel()

	plain := errors.New("something else")
	if got := withHint(plain); got != plain.Error() {
		t.Errorf("unknown errors should pass through unchanged, got %q", got)
	}

	got := withHint(ErrWriteOutput)
	if !bytes.Contains([]byte(got), []byte("hint:")) {
		t.Errorf("write errors should carry a hint, got %q", got)
	}
}
