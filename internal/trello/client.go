package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the Trello API origin.
const DefaultBaseURL = "https://api.trello.com"

// defaultCardPos is the position assigned to created cards unless the
// caller picks one. New listings go to the bottom of the list so the
// board keeps its triage order.
const defaultCardPos = "bottom"

// queryMethods are the side-effect-free verbs whose parameters travel in
// the URL query string. Every other verb sends parameters in a
// form-encoded request body.
var queryMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodOptions: true,
}

// Client is an authenticated Trello REST API client.
// It holds the credential pair and injects it into every request; beyond
// that it is stateless, so a single Client is safe for sequential reuse
// across operations.
//
// Design decision: We build on resty rather than raw net/http because
// it handles query/form parameter encoding and response buffering
// uniformly, which keeps the Request contract small.
type Client struct {
	// apiKey is the Trello API key, stored verbatim and never inspected.
	apiKey string

	// userToken is the Trello user token, stored verbatim and never inspected.
	userToken string

	// baseURL is the API origin that relative request paths resolve against.
	baseURL string

	// rest is the underlying HTTP client.
	rest *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API origin. Used in tests to point the
// client at a local fake server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rest.SetTimeout(timeout)
	}
}

// WithUserAgent sets the User-Agent header for all requests.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.rest.SetHeader("User-Agent", userAgent)
	}
}

// NewClient creates a Trello client with the given credential pair.
// Both values are opaque to the client: they are stored verbatim and
// forwarded on every request, never validated locally.
func NewClient(apiKey, userToken string, opts ...Option) *Client {
	c := &Client{
		apiKey:    apiKey,
		userToken: userToken,
		baseURL:   DefaultBaseURL,
		rest:      resty.New().SetTimeout(30 * time.Second),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Request issues an authenticated request against the Trello API.
//
// path is resolved against the client's base origin using standard URL
// reference resolution: a relative path is appended to the origin, and a
// full URL in path overrides the base entirely. The override is a
// recognized edge case of the join semantics and is preserved.
//
// Parameters are placed in the query string for GET, HEAD, and OPTIONS
// and in the form-encoded body for all other verbs. The credential pair
// is injected into the same channel, unconditionally overwriting any
// caller-supplied "key" or "token" values.
//
// A response with status below 400 is a success; its raw body is
// returned for the caller to decode, except status 204 (No Content)
// which returns nil without attempting to read a body. Any other status
// yields an *APIError. Transport failures propagate unchanged.
func (c *Client) Request(ctx context.Context, method, path string, params map[string]string) ([]byte, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}
	target := base.ResolveReference(ref).String()

	merged := make(map[string]string, len(params)+2)
	for k, v := range params {
		merged[k] = v
	}
	merged["key"] = c.apiKey
	merged["token"] = c.userToken

	method = strings.ToUpper(method)
	req := c.rest.R().SetContext(ctx)
	if queryMethods[method] {
		req.SetQueryParams(merged)
	} else {
		req.SetFormData(merged)
	}

	slog.DebugContext(ctx, "trello request", "method", method, "path", path)

	resp, err := req.Execute(method, target)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "trello response", "method", method, "path", path, "status", resp.StatusCode())

	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, newAPIError(resp)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}
	return resp.Body(), nil
}

// Get issues an authenticated GET request.
func (c *Client) Get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	return c.Request(ctx, http.MethodGet, path, params)
}

// Post issues an authenticated POST request.
func (c *Client) Post(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	return c.Request(ctx, http.MethodPost, path, params)
}

// Put issues an authenticated PUT request.
func (c *Client) Put(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	return c.Request(ctx, http.MethodPut, path, params)
}

// Delete issues an authenticated DELETE request.
func (c *Client) Delete(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	return c.Request(ctx, http.MethodDelete, path, params)
}

// BoardFilter selects which lists and cards to include when fetching a
// board. Recognized values for Lists are "all", "none", "open", and
// "closed"; Cards additionally accepts "visible". Values are passed
// through uninterpreted: rejecting unknown filters is the API's job.
type BoardFilter struct {
	// Lists filters the board's lists. Empty omits lists entirely.
	Lists string

	// Cards filters the board's cards. Empty omits cards entirely.
	Cards string
}

// ListMemberBoards returns the boards of the authenticated member.
func (c *Client) ListMemberBoards(ctx context.Context) ([]Board, error) {
	body, err := c.Get(ctx, "/1/members/me/boards", nil)
	if err != nil {
		return nil, err
	}

	var boards []Board
	if err := json.Unmarshal(body, &boards); err != nil {
		return nil, fmt.Errorf("failed to decode boards: %w", err)
	}
	return boards, nil
}

// GetBoard fetches a board with the requested list and card filters.
func (c *Client) GetBoard(ctx context.Context, boardID string, filter BoardFilter) (*Board, error) {
	params := make(map[string]string, 2)
	if filter.Lists != "" {
		params["lists"] = filter.Lists
	}
	if filter.Cards != "" {
		params["cards"] = filter.Cards
	}

	body, err := c.Get(ctx, "/1/boards/"+boardID, params)
	if err != nil {
		return nil, err
	}

	var board Board
	if err := json.Unmarshal(body, &board); err != nil {
		return nil, fmt.Errorf("failed to decode board: %w", err)
	}
	if board.ID == "" {
		return nil, fmt.Errorf("board document missing id")
	}
	return &board, nil
}

// CreateCardRequest holds the optional attributes of a new card.
type CreateCardRequest struct {
	// Name is the card title.
	Name string

	// Desc is the card description.
	Desc string

	// Pos is the card position within the list ("top", "bottom", or a
	// number). Empty defaults to "bottom".
	Pos string

	// URLSource asks Trello to seed the card from a URL.
	URLSource string
}

// CreateCard creates a card in the given list.
func (c *Client) CreateCard(ctx context.Context, listID string, req CreateCardRequest) (*Card, error) {
	params := map[string]string{"idList": listID}
	if req.Name != "" {
		params["name"] = req.Name
	}
	if req.Desc != "" {
		params["desc"] = req.Desc
	}
	pos := req.Pos
	if pos == "" {
		pos = defaultCardPos
	}
	params["pos"] = pos
	if req.URLSource != "" {
		params["urlSource"] = req.URLSource
	}

	body, err := c.Post(ctx, "/1/cards", params)
	if err != nil {
		return nil, err
	}

	var card Card
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("failed to decode card: %w", err)
	}
	if card.ID == "" {
		return nil, fmt.Errorf("card document missing id")
	}
	return &card, nil
}

// AttachmentRequest holds the attributes of a new card attachment.
type AttachmentRequest struct {
	// URL is the attachment target. Trello downloads and mirrors it.
	URL string

	// Name is an optional display name for the attachment.
	Name string

	// MimeType is an optional MIME type hint.
	MimeType string
}

// AttachToCard attaches a URL to the given card.
func (c *Client) AttachToCard(ctx context.Context, cardID string, req AttachmentRequest) (*CardAttachment, error) {
	params := make(map[string]string, 3)
	if req.URL != "" {
		params["url"] = req.URL
	}
	if req.Name != "" {
		params["name"] = req.Name
	}
	if req.MimeType != "" {
		params["mimeType"] = req.MimeType
	}

	body, err := c.Post(ctx, "/1/cards/"+cardID+"/attachments", params)
	if err != nil {
		return nil, err
	}

	var att CardAttachment
	if err := json.Unmarshal(body, &att); err != nil {
		return nil, fmt.Errorf("failed to decode attachment: %w", err)
	}
	if att.ID == "" {
		return nil, fmt.Errorf("attachment document missing id")
	}
	return &att, nil
}

// CoverState is a tri-state input for a card's cover attachment:
// the zero value leaves the cover untouched, CoverClear removes the
// current cover, and CoverAttachment sets a specific attachment as
// cover. An explicit tri-state avoids the ambiguity of treating an
// empty identifier as "do nothing".
type CoverState struct {
	set bool
	id  string
}

// CoverUnset leaves the card's cover untouched (the field is omitted
// from the update request entirely).
func CoverUnset() CoverState { return CoverState{} }

// CoverClear removes the card's cover by sending an explicit empty
// attachment identifier.
func CoverClear() CoverState { return CoverState{set: true} }

// CoverAttachment sets the given attachment as the card's cover.
func CoverAttachment(attachmentID string) CoverState {
	return CoverState{set: true, id: attachmentID}
}

// UpdateCardRequest holds the card attributes to change. Nil/unset
// fields are omitted from the request and keep their current values.
type UpdateCardRequest struct {
	// Name replaces the card title when non-nil.
	Name *string

	// Cover updates the card's cover attachment.
	Cover CoverState
}

// UpdateCard updates a card's name and/or cover attachment.
func (c *Client) UpdateCard(ctx context.Context, cardID string, req UpdateCardRequest) (*Card, error) {
	params := make(map[string]string, 2)
	if req.Name != nil {
		params["name"] = *req.Name
	}
	if req.Cover.set {
		params["idAttachmentCover"] = req.Cover.id
	}

	body, err := c.Put(ctx, "/1/cards/"+cardID, params)
	if err != nil {
		return nil, err
	}

	var card Card
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("failed to decode card: %w", err)
	}
	return &card, nil
}
