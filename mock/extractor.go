package mock

import "github.com/fwojciec/televideo"

var _ televideo.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of televideo.Extractor.
type Extractor struct {
	ExtractLinesFn func(markup string) []string
}

func (e *Extractor) ExtractLines(markup string) []string {
	return e.ExtractLinesFn(markup)
}
