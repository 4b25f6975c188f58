package televideo

// NoContentPlaceholder is the single line an Extractor yields when a
// document contains no extractable page body.
const NoContentPlaceholder = "(No content found on this page)"

// Extractor isolates the page body from the markup document returned by
// the text endpoint and yields it as display-ordered lines.
type Extractor interface {
	// ExtractLines never fails: missing or malformed structure degrades
	// to a single NoContentPlaceholder line rather than an error.
	// Whitespace and empty lines are preserved exactly; they encode the
	// original column layout.
	ExtractLines(markup string) []string
}
