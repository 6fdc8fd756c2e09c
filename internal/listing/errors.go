package listing

import "errors"

// Extraction structural errors.
// Each missing required node has its own sentinel so failures name the
// exact part of the page that no longer matches, which is the first
// thing to check when Daft changes its markup.
var (
	// ErrNoContent is returned when the primary content container is
	// missing. The document does not match the expected page structure
	// at all; no other field is read.
	ErrNoContent = errors.New("listing page has no content container")

	// ErrNoTitle is returned when the title heading is missing.
	ErrNoTitle = errors.New("listing page has no title heading")

	// ErrNoImage is returned when the main gallery image is missing.
	ErrNoImage = errors.New("listing page has no gallery image")

	// ErrNoPrice is returned when the price display node is missing.
	ErrNoPrice = errors.New("listing page has no price node")

	// ErrSummaryItems is returned when fewer than three summary header
	// nodes are present, so the bed and bath positions cannot be read.
	ErrSummaryItems = errors.New("listing page has too few summary items")
)
