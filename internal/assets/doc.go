// Package assets provides the CSS styles and HTML page templates used to
// assemble the final notes document. Assets can be loaded from embedded
// files or from a custom filesystem path.
package assets
