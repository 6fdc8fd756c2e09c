package listing

// Listing is the flat attribute record extracted from a listing page.
// All fields are populated on success; extraction never yields a
// partial record.
type Listing struct {
	// URL is the source listing URL, supplied by the caller.
	URL string

	// Title is the listing headline.
	Title string

	// Image is the absolute URL of the main gallery image.
	// Protocol-relative sources are rewritten to https.
	Image string

	// Price is the displayed price text, uninterpreted (no currency
	// parsing).
	Price string

	// Beds is the displayed bedroom count text.
	Beds string

	// Baths is the displayed bathroom count text.
	Baths string

	// Description is the overview text, paragraphs separated by a blank
	// line. May be empty when the page has no description blocks.
	Description string
}
