package listing

import (
	"errors"
	"strings"
	"testing"
)

// pageOptions controls which parts of the test fixture are present.
type pageOptions struct {
	noContent      bool
	noTitle        bool
	noImage        bool
	noPrice        bool
	imageSrc       string
	summaryItems   []string
	descriptions   []string
	noSummaryBlock bool
}

// buildPage renders a minimal Daft-shaped listing page.
func buildPage(opts pageOptions) []byte {
	var b strings.Builder
	b.WriteString("<html><head><title>page</title></head><body>")

	if !opts.noImage {
		src := opts.imageSrc
		if src == "" {
			src = "//img.example/1.jpg"
		}
		b.WriteString(`<div id="smi-gallery-img-main"><img src="` + src + `"></div>`)
	}

	if !opts.noPrice {
		b.WriteString(`<span id="smi-price-string">€1,500</span>`)
	}

	if !opts.noSummaryBlock {
		b.WriteString(`<div id="smi-summary-items">`)
		items := opts.summaryItems
		if items == nil {
			items = []string{"Apartment", "2", "1"}
		}
		for _, item := range items {
			b.WriteString(`<span class="header_text">` + item + `</span>`)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`<div id="smi-tab-overview">`)
	for _, desc := range opts.descriptions {
		b.WriteString(`<div class="description_block">` + desc + `</div>`)
	}
	b.WriteString(`</div>`)

	if !opts.noContent {
		b.WriteString(`<div id="content">`)
		if !opts.noTitle {
			b.WriteString(`<div class="smi-info"><h1>Nice Flat</h1></div>`)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString("</body></html>")
	return []byte(b.String())
}

// TestExtract tests the happy path over a complete page.
func TestExtract(t *testing.T) {
	t.Parallel()

	page := buildPage(pageOptions{descriptions: []string{"A", "B"}})

	got, err := Extract(page, "https://www.daft.ie/listing/123")
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}

	want := Listing{
		URL:         "https://www.daft.ie/listing/123",
		Title:       "Nice Flat",
		Image:       "https://img.example/1.jpg",
		Price:       "€1,500",
		Beds:        "2",
		Baths:       "1",
		Description: "A\n\nB",
	}
	if *got != want {
		t.Errorf("Extract() = %+v, want %+v", *got, want)
	}
}

// TestExtractImageURL tests gallery image URL normalization.
func TestExtractImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "protocol-relative URL is rewritten to https",
			src:  "//img.example/photo.jpg",
			want: "https://img.example/photo.jpg",
		},
		{
			name: "absolute https URL passes through",
			src:  "https://img.example/photo.jpg",
			want: "https://img.example/photo.jpg",
		},
		{
			name: "absolute http URL passes through",
			src:  "http://img.example/photo.jpg",
			want: "http://img.example/photo.jpg",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := buildPage(pageOptions{imageSrc: tt.src})
			got, err := Extract(page, "https://www.daft.ie/listing/123")
			if err != nil {
				t.Fatalf("Extract() failed: %v", err)
			}
			if got.Image != tt.want {
				t.Errorf("Image = %q, want %q", got.Image, tt.want)
			}
		})
	}
}

// TestExtractStructuralFailures tests that missing required nodes are
// hard errors with the matching sentinel.
func TestExtractStructuralFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    pageOptions
		wantErr error
	}{
		{
			name:    "missing content container",
			opts:    pageOptions{noContent: true},
			wantErr: ErrNoContent,
		},
		{
			name:    "missing title heading",
			opts:    pageOptions{noTitle: true},
			wantErr: ErrNoTitle,
		},
		{
			name:    "missing gallery image",
			opts:    pageOptions{noImage: true},
			wantErr: ErrNoImage,
		},
		{
			name:    "missing price node",
			opts:    pageOptions{noPrice: true},
			wantErr: ErrNoPrice,
		},
		{
			name:    "too few summary items",
			opts:    pageOptions{summaryItems: []string{"Apartment", "2"}},
			wantErr: ErrSummaryItems,
		},
		{
			name:    "missing summary block entirely",
			opts:    pageOptions{noSummaryBlock: true},
			wantErr: ErrSummaryItems,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Extract(buildPage(tt.opts), "https://www.daft.ie/listing/123")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Extract() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestExtractMissingContentFailsFirst tests that a document without the
// content container fails before any other field is considered, even
// when every other node is also missing.
func TestExtractMissingContentFailsFirst(t *testing.T) {
	t.Parallel()

	page := []byte("<html><body><p>not a listing</p></body></html>")

	_, err := Extract(page, "https://www.daft.ie/listing/123")
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("Extract() error = %v, want ErrNoContent", err)
	}
}

// TestExtractDescription tests description block joining and markup
// stripping.
func TestExtractDescription(t *testing.T) {
	t.Parallel()

	t.Run("zero blocks yield empty description", func(t *testing.T) {
		t.Parallel()

		got, err := Extract(buildPage(pageOptions{}), "https://www.daft.ie/listing/123")
		if err != nil {
			t.Fatalf("Extract() failed: %v", err)
		}
		if got.Description != "" {
			t.Errorf("expected empty description, got %q", got.Description)
		}
	})

	t.Run("single block has no separator", func(t *testing.T) {
		t.Parallel()

		got, err := Extract(buildPage(pageOptions{descriptions: []string{"Only paragraph"}}), "https://www.daft.ie/listing/123")
		if err != nil {
			t.Fatalf("Extract() failed: %v", err)
		}
		if got.Description != "Only paragraph" {
			t.Errorf("unexpected description: %q", got.Description)
		}
	})

	t.Run("nested markup is stripped to plain text", func(t *testing.T) {
		t.Parallel()

		page := buildPage(pageOptions{descriptions: []string{
			"Bright <b>south-facing</b> apartment",
			"Close to <a href='/x'>transport</a>",
		}})

		got, err := Extract(page, "https://www.daft.ie/listing/123")
		if err != nil {
			t.Fatalf("Extract() failed: %v", err)
		}
		want := "Bright south-facing apartment\n\nClose to transport"
		if got.Description != want {
			t.Errorf("Description = %q, want %q", got.Description, want)
		}
	})
}

// TestExtractSummaryPositions tests that beds and baths come from the
// second and third summary headers.
func TestExtractSummaryPositions(t *testing.T) {
	t.Parallel()

	page := buildPage(pageOptions{summaryItems: []string{"House", "4 Beds", "3 Baths", "150 m²"}})

	got, err := Extract(page, "https://www.daft.ie/listing/123")
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if got.Beds != "4 Beds" {
		t.Errorf("Beds = %q, want %q", got.Beds, "4 Beds")
	}
	if got.Baths != "3 Baths" {
		t.Errorf("Baths = %q, want %q", got.Baths, "3 Baths")
	}
}
