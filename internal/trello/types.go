package trello

// Board is the remote representation of a Trello board, optionally
// including its lists and cards depending on the filters requested.
type Board struct {
	// ID is the board identifier.
	ID string `json:"id"`

	// Name is the board display name.
	Name string `json:"name"`

	// Lists contains the board's lists in board order.
	// Only populated when the board was fetched with a lists filter.
	Lists []List `json:"lists,omitempty"`

	// Cards contains the board's cards.
	// Only populated when the board was fetched with a cards filter.
	Cards []Card `json:"cards,omitempty"`
}

// List is a list on a Trello board.
type List struct {
	// ID is the list identifier.
	ID string `json:"id"`

	// Name is the list display name.
	Name string `json:"name"`
}

// Card is a card on a Trello board.
type Card struct {
	// ID is the card identifier.
	ID string `json:"id"`

	// Name is the card title.
	Name string `json:"name"`

	// Desc is the card description.
	Desc string `json:"desc,omitempty"`

	// ListID is the identifier of the list containing this card.
	ListID string `json:"idList"`

	// URL is the card's permalink.
	URL string `json:"url,omitempty"`
}

// CardAttachment is a file or URL attached to a card.
type CardAttachment struct {
	// ID is the attachment identifier.
	ID string `json:"id"`

	// Name is the attachment display name.
	Name string `json:"name,omitempty"`

	// URL is the attachment target.
	URL string `json:"url,omitempty"`
}

// CardsByList groups the board's cards by their containing list
// identifier. Grouping is a derived view: Trello stores only the
// card-to-list reference, so consumers compute the hierarchy here.
// Card order within each list follows the board's card order.
func (b *Board) CardsByList() map[string][]Card {
	grouped := make(map[string][]Card, len(b.Lists))
	for _, card := range b.Cards {
		grouped[card.ListID] = append(grouped[card.ListID], card)
	}
	return grouped
}
