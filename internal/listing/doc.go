// Package listing extracts a fixed schema of property attributes from a
// Daft.ie listing page using selector-based queries against the HTML
// document tree.
//
// The extractor is deliberately all-or-nothing: any required node
// missing from the page is a hard error, never a partial record. It is
// tightly coupled to one external page's markup and has no tolerance
// for structural drift; when Daft changes its markup, extraction fails
// loudly instead of producing silently wrong cards.
package listing
