// Package televideo provides a terminal client for RAI Televideo, the
// Italian teletext service. It fetches numbered pages in either a
// plain-text or rasterized-image representation, caches both forms in
// memory with a freshness window, and renders the current page in a
// text terminal.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., http/, goquery/, mem/, client/).
package televideo
