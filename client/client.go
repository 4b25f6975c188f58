// Package client implements televideo.PageService: it fetches Televideo
// pages over a Fetcher, extracts their text, and caches results in
// memory so repeat visits within the freshness window cost no network
// round-trips.
package client

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/televideo"
	"github.com/fwojciec/televideo/mem"
)

// DefaultTTL is how long a fetched page or image stays fresh. Televideo
// rotates sub-pages on roughly this scale, so older copies are refetched.
const DefaultTTL = 5 * time.Minute

const (
	defaultTextBaseURL  = "https://www.servizitelevideo.rai.it/televideo/pub/solotesto.jsp"
	defaultImageBaseURL = "http://www.televideo.rai.it/televideo/pub/tt4web/Nazionale"
)

// Ensure Client implements televideo.PageService at compile time.
var _ televideo.PageService = (*Client)(nil)

// Client fetches and caches Televideo pages. Text pages and rendered
// images are cached independently, keyed by (page, sub-page).
type Client struct {
	fetcher   televideo.Fetcher
	extractor televideo.Extractor
	pages     televideo.Cache[*televideo.Page]
	images    televideo.Cache[*televideo.PageImage]
	textBase  string
	imageBase string
	ttl       time.Duration
	now       func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithTTL overrides the freshness window of both caches.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.ttl = ttl
	}
}

// WithTextBaseURL overrides the solotesto.jsp endpoint.
func WithTextBaseURL(u string) Option {
	return func(c *Client) {
		c.textBase = u
	}
}

// WithImageBaseURL overrides the page image endpoint.
func WithImageBaseURL(u string) Option {
	return func(c *Client) {
		c.imageBase = u
	}
}

// WithClock overrides the time source used for FetchedAt stamps and
// cache freshness. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a new Client over the given fetcher and extractor. Both
// caches are created here and start empty.
func New(fetcher televideo.Fetcher, extractor televideo.Extractor, opts ...Option) *Client {
	c := &Client{
		fetcher:   fetcher,
		extractor: extractor,
		textBase:  defaultTextBaseURL,
		imageBase: defaultImageBaseURL,
		ttl:       DefaultTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.pages = mem.New(c.ttl, mem.WithNow[*televideo.Page](c.now))
	c.images = mem.New(c.ttl, mem.WithNow[*televideo.PageImage](c.now))

	return c
}

// FetchPage returns the text content of a teletext page. A fresh cached
// copy is returned without network I/O; otherwise the page is fetched,
// extracted, cached, and returned. Callers always receive their own copy,
// never the cached one. Failed fetches leave the cache untouched.
func (c *Client) FetchPage(ctx context.Context, page, subPage int) (*televideo.Page, error) {
	id := televideo.PageID{Number: page, SubPage: subPage}
	if cached, ok := c.pages.GetFresh(id); ok {
		return cached.Clone(), nil
	}

	body, err := c.fetcher.Fetch(ctx, c.textURL(id))
	if err != nil {
		if televideo.ErrorCode(err) == televideo.ENOTFOUND {
			return nil, televideo.Errorf(televideo.ENOTFOUND, "page %s not found", id)
		}
		return nil, err
	}

	p := &televideo.Page{
		Number:    page,
		SubPage:   subPage,
		Lines:     c.extractor.ExtractLines(string(body)),
		FetchedAt: c.now(),
	}
	p.ContentHash = hashLines(p.Lines)

	c.pages.Put(p.ID(), p.Clone())

	return p, nil
}

// FetchImage returns the rendered image of a teletext page, fetching and
// decoding it on a cache miss. Bytes that cannot be decoded as an image
// yield an EDECODE error. Failed fetches leave the cache untouched.
func (c *Client) FetchImage(ctx context.Context, page, subPage int) (*televideo.PageImage, error) {
	id := televideo.PageID{Number: page, SubPage: subPage}
	if cached, ok := c.images.GetFresh(id); ok {
		return cached, nil
	}

	body, err := c.fetcher.Fetch(ctx, c.imageURL(id))
	if err != nil {
		if televideo.ErrorCode(err) == televideo.ENOTFOUND {
			return nil, televideo.Errorf(televideo.ENOTFOUND, "image for page %s not found", id)
		}
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, televideo.Errorf(televideo.EDECODE, "decode image for page %s: %v", id, err)
	}

	pi := &televideo.PageImage{
		Image:     img,
		FetchedAt: c.now(),
	}

	c.images.Put(id, pi)

	return pi, nil
}

// ClearCache empties both caches. It is idempotent and cannot fail.
func (c *Client) ClearCache() {
	c.pages.Clear()
	c.images.Clear()
}

// textURL builds the solotesto.jsp URL for a page. The sottopagina
// parameter is only present for sub-pages past the first.
func (c *Client) textURL(id televideo.PageID) string {
	if id.SubPage > 1 {
		return fmt.Sprintf("%s?pagina=%d&sottopagina=%d", c.textBase, id.Number, id.SubPage)
	}
	return fmt.Sprintf("%s?pagina=%d", c.textBase, id.Number)
}

// imageURL builds the 16:9 PNG URL for a page. Sub-pages past the first
// select a numbered variant.
func (c *Client) imageURL(id televideo.PageID) string {
	if id.SubPage > 1 {
		return fmt.Sprintf("%s/16_9_page-%d.%d.png", c.imageBase, id.Number, id.SubPage)
	}
	return fmt.Sprintf("%s/16_9_page-%d.png", c.imageBase, id.Number)
}

// hashLines fingerprints extracted content so hosts can cheaply detect
// that a refetch changed nothing.
func hashLines(lines []string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(strings.Join(lines, "\n")))
}
