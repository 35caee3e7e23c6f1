package notes2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument  = errors.New("document text cannot be empty")
	ErrTemplateParse  = errors.New("page template parsing failed")
	ErrTemplateRender = errors.New("page template rendering failed")

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
