package listing

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Selectors for the Daft.ie listing page structure.
// These mirror one specific page layout; see the package comment on the
// all-or-nothing failure policy.
const (
	selContent      = "div#content"
	selTitle        = ".smi-info h1"
	selGalleryImage = "#smi-gallery-img-main img"
	selPrice        = "#smi-price-string"
	selSummaryItems = "#smi-summary-items .header_text"
	selDescription  = "#smi-tab-overview .description_block"
)

// Positions within the summary header sequence. Position 0 is the
// property type and is not extracted.
const (
	summaryBedsIndex  = 1
	summaryBathsIndex = 2
)

// Extract parses a fetched listing page and pulls the fixed Listing
// schema out of it. sourceURL is carried into the record unchanged.
//
// The gallery image is looked up from the document root while the title
// is scoped to the content container. The asymmetry matches the target
// page's actual structure and is preserved deliberately.
func Extract(body []byte, sourceURL string) (*Listing, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}

	content := doc.Find(selContent)
	if content.Length() == 0 {
		return nil, ErrNoContent
	}

	title := content.Find(selTitle).First()
	if title.Length() == 0 {
		return nil, ErrNoTitle
	}

	image := doc.Find(selGalleryImage).First()
	src, ok := image.Attr("src")
	if !ok {
		return nil, ErrNoImage
	}
	if strings.HasPrefix(src, "//") {
		// Protocol-relative source; pin it to the secure scheme.
		src = "https:" + src
	}

	price := doc.Find(selPrice).First()
	if price.Length() == 0 {
		return nil, ErrNoPrice
	}

	summary := doc.Find(selSummaryItems)
	if summary.Length() <= summaryBathsIndex {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrSummaryItems, summary.Length(), summaryBathsIndex+1)
	}

	var blocks []string
	doc.Find(selDescription).Each(func(_ int, sel *goquery.Selection) {
		blocks = append(blocks, nodeText(sel))
	})

	return &Listing{
		URL:         sourceURL,
		Title:       strings.TrimSpace(title.Text()),
		Image:       src,
		Price:       strings.TrimSpace(price.Text()),
		Beds:        strings.TrimSpace(summary.Eq(summaryBedsIndex).Text()),
		Baths:       strings.TrimSpace(summary.Eq(summaryBathsIndex).Text()),
		Description: strings.Join(blocks, "\n\n"),
	}, nil
}

// nodeText returns the plain text content of a selection with all
// nested markup stripped, walking the underlying nodes directly.
func nodeText(sel *goquery.Selection) string {
	var buf bytes.Buffer
	for _, n := range sel.Nodes {
		writeText(n, &buf)
	}
	return strings.TrimSpace(buf.String())
}

// writeText appends the text content of a node and its descendants.
func writeText(n *html.Node, buf *bytes.Buffer) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		buf.WriteString(n.Data)
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		writeText(child, buf)
	}
}
