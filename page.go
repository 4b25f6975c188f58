package televideo

import (
	"context"
	"fmt"
	"image"
	"slices"
	"time"
)

// Televideo page numbers occupy a fixed three-digit space.
const (
	MinPage = 100
	MaxPage = 899
)

// PageID identifies a page and sub-page pair. Sub-page numbering starts
// at 1; sub-page 1 is the canonical page. PageID is comparable and is
// used directly as a cache key.
type PageID struct {
	Number  int
	SubPage int
}

// String renders the identifier the way the service displays it:
// "101" for the canonical sub-page, "101.2" otherwise.
func (id PageID) String() string {
	if id.SubPage > 1 {
		return fmt.Sprintf("%d.%d", id.Number, id.SubPage)
	}
	return fmt.Sprintf("%d", id.Number)
}

// Page is the plain-text representation of a fetched page. Lines are in
// display order, top to bottom, with whitespace preserved exactly as the
// service emitted it (leading and trailing spaces carry column alignment).
// A Page is immutable once constructed.
type Page struct {
	Number      int
	SubPage     int
	Lines       []string
	ContentHash string
	FetchedAt   time.Time
}

// ID returns the page's identifier.
func (p *Page) ID() PageID {
	return PageID{Number: p.Number, SubPage: p.SubPage}
}

// Clone returns a deep copy of the page. Cache reads hand out clones so
// callers never alias the cached value.
func (p *Page) Clone() *Page {
	other := *p
	other.Lines = slices.Clone(p.Lines)
	return &other
}

// PageImage is the rasterized representation of a fetched page. The
// decoded image is shared by reference; implementations never mutate it
// after construction.
type PageImage struct {
	Image     image.Image
	FetchedAt time.Time
}

// PageService retrieves Televideo pages in either representation and
// owns the freshness-bounded caches for both. This is the only contract
// the terminal UI relies on.
type PageService interface {
	// FetchPage returns the plain-text form of a page. A fresh cached
	// copy is served without network I/O; otherwise exactly one request
	// is issued, with no automatic retry. Returns ENOTFOUND if the
	// remote has no such page. Failures never evict cached values.
	FetchPage(ctx context.Context, page, subPage int) (*Page, error)

	// FetchImage returns the rasterized form of a page, cached
	// independently of the text form. Returns ENOTFOUND if the remote
	// has no such page and EDECODE if the bytes are not a decodable
	// raster image.
	FetchImage(ctx context.Context, page, subPage int) (*PageImage, error)

	// ClearCache unconditionally empties both caches. Idempotent.
	ClearCache()
}
