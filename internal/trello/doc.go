// Package trello provides an authenticated client for the Trello REST
// API, covering the small surface daft2trello needs: listing the
// authenticated member's boards, fetching a board with its lists and
// cards, creating cards, attaching URLs to cards, and updating a card's
// name and cover attachment.
//
// All operations go through a single Request method with a uniform
// contract: credentials are injected into the query string for
// side-effect-free verbs and into the form-encoded body for everything
// else, and any non-success HTTP status is normalized into an *APIError
// carrying the status code and full response for diagnostics.
package trello
