package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mkeane/daft2trello/internal/listing"
	"github.com/mkeane/daft2trello/internal/trello"
)

// PageFetcher retrieves the raw bytes of a listing page.
// Satisfied by *fetch.Fetcher.
type PageFetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Importer drives the fetch → extract → publish sequence.
type Importer struct {
	// fetcher retrieves listing pages.
	fetcher PageFetcher

	// client talks to the Trello API.
	client *trello.Client
}

// New creates an Importer from its two collaborators.
func New(fetcher PageFetcher, client *trello.Client) *Importer {
	return &Importer{
		fetcher: fetcher,
		client:  client,
	}
}

// Result describes what an import created.
type Result struct {
	// Listing is the extracted attribute record.
	Listing *listing.Listing

	// Card is the created card.
	Card *trello.Card

	// CoverAttachment is the gallery image attachment set as the card's
	// cover.
	CoverAttachment *trello.CardAttachment

	// SourceAttachment is the attachment linking back to the source
	// listing page.
	SourceAttachment *trello.CardAttachment
}

// Scrape fetches and extracts a listing without touching Trello.
// Used by the scrape command for dry runs while tuning selectors.
func (im *Importer) Scrape(ctx context.Context, url string) (*listing.Listing, error) {
	body, err := im.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return listing.Extract(body, url)
}

// Import publishes the listing at url as a card on the given board.
//
// The target list is the first list of the board; there is no list
// choice at import time. Steps run in a fixed order: create the card,
// attach the gallery image, set it as cover, attach the source URL.
// Each step's identifiers feed the next and any error aborts the whole
// sequence without compensating for earlier steps.
func (im *Importer) Import(ctx context.Context, boardID, url string) (*Result, error) {
	l, err := im.Scrape(ctx, url)
	if err != nil {
		return nil, err
	}

	board, err := im.client.GetBoard(ctx, boardID, trello.BoardFilter{Lists: "all", Cards: "all"})
	if err != nil {
		return nil, err
	}
	if len(board.Lists) == 0 {
		return nil, fmt.Errorf("board %s has no lists to import into", boardID)
	}
	targetList := board.Lists[0]

	slog.DebugContext(ctx, "importing listing",
		"board", board.ID,
		"list", targetList.ID,
		"title", l.Title,
	)

	card, err := im.client.CreateCard(ctx, targetList.ID, trello.CreateCardRequest{
		Name: CardName(l),
		Desc: l.Description,
	})
	if err != nil {
		return nil, err
	}

	cover, err := im.client.AttachToCard(ctx, card.ID, trello.AttachmentRequest{URL: l.Image})
	if err != nil {
		return nil, err
	}

	if _, err := im.client.UpdateCard(ctx, card.ID, trello.UpdateCardRequest{
		Cover: trello.CoverAttachment(cover.ID),
	}); err != nil {
		return nil, err
	}

	source, err := im.client.AttachToCard(ctx, card.ID, trello.AttachmentRequest{URL: l.URL})
	if err != nil {
		return nil, err
	}

	return &Result{
		Listing:          l,
		Card:             card,
		CoverAttachment:  cover,
		SourceAttachment: source,
	}, nil
}

// CardName builds the card title from the extracted listing attributes.
func CardName(l *listing.Listing) string {
	return fmt.Sprintf("%s - %s / %s - %s", l.Title, l.Beds, l.Baths, l.Price)
}
