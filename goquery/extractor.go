package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/televideo"
	"golang.org/x/net/html"
)

// Markers the Televideo backend wraps around the text-only payload of
// solotesto.jsp responses.
const (
	startMarker = "<!-- SOLOTESTO PAGINA E SOTTOPAGINA -->"
	endMarker   = "<!-- /SOLOTESTO PAGINA E SOTTOPAGINA -->"
)

var _ televideo.Extractor = (*Extractor)(nil)

// Extractor pulls teletext lines out of a Televideo text-only HTML page.
// It narrows the document to the region between the SOLOTESTO markers,
// reads the first <pre> element, and splits its text into lines with all
// interior whitespace preserved.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLines returns the teletext lines found in markup. It never
// fails: when no recognizable content is present it returns a single
// placeholder line.
func (e *Extractor) ExtractLines(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(narrow(markup)))
	if err != nil {
		return []string{televideo.NoContentPlaceholder}
	}

	pre := doc.Find("pre").First()
	if pre.Length() == 0 {
		return []string{televideo.NoContentPlaceholder}
	}

	unwrapAnchors(pre)

	lines := splitLines(pre.Text())
	if len(lines) == 0 {
		return []string{televideo.NoContentPlaceholder}
	}

	return lines
}

// narrow restricts markup to the region between the SOLOTESTO markers.
// When either marker is missing, or they appear out of order, the whole
// document is used instead.
func narrow(markup string) string {
	start := strings.Index(markup, startMarker)
	end := strings.Index(markup, endMarker)
	if start == -1 || end == -1 || end < start {
		return markup
	}
	return markup[start:end]
}

// unwrapAnchors replaces each anchor that carries a lone href attribute
// and wraps a single non-empty text node with that text node. Televideo
// wraps page numbers in such anchors; unwrapping keeps the surrounding
// line layout intact while dropping the link markup.
func unwrapAnchors(sel *goquery.Selection) {
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		node := a.Get(0)
		if len(node.Attr) != 1 || node.Attr[0].Key != "href" {
			return
		}
		child := node.FirstChild
		if child == nil || child.NextSibling != nil || child.Type != html.TextNode || child.Data == "" {
			return
		}
		text := &html.Node{Type: html.TextNode, Data: child.Data}
		node.Parent.InsertBefore(text, node)
		node.Parent.RemoveChild(node)
	})
}

// splitLines splits text on \n and \r\n line endings without trimming
// any other whitespace. A final line ending does not produce a trailing
// empty line, and empty input yields no lines at all.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	segs := strings.Split(text, "\n")
	last := len(segs) - 1
	for i := 0; i < last; i++ {
		segs[i] = strings.TrimSuffix(segs[i], "\r")
	}
	if segs[last] == "" {
		segs = segs[:last]
	}
	return segs
}
