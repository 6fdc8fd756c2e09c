package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

// maskedKeys contains attribute keys whose values are always masked.
//
// Unlike generic tools, the bare "key" keyword is included here: in the
// Trello API the credential pair travels as the "key" and "token"
// request parameters, so attributes with those exact names are the most
// likely place for credentials to leak into logs.
var maskedKeys = map[string]bool{
	"key":           true,
	"token":         true,
	"api_key":       true,
	"apikey":        true,
	"user_token":    true,
	"password":      true,
	"secret":        true,
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
}

// maskedPatterns contains regex patterns that indicate credential
// values. Values matching these patterns are masked regardless of the
// attribute key.
var maskedPatterns = []*regexp.Regexp{
	// Trello user tokens are long hex strings
	regexp.MustCompile(`^[0-9a-f]{64,}$`),

	// Bearer tokens
	regexp.MustCompile(`(?i)^bearer\s+.+`),

	// Basic auth
	regexp.MustCompile(`(?i)^basic\s+[A-Za-z0-9+/=]+$`),
}

// MaskValue is the string used to replace masked values.
const MaskValue = "***REDACTED***"

// SecureHandler wraps an slog.Handler to mask credential attributes.
// It intercepts log records and replaces attribute values that match
// credential key names or value patterns before passing them to the
// underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because it integrates seamlessly with standard slog APIs and works
// with any underlying handler (text, JSON, etc.).
type SecureHandler struct {
	// handler is the underlying slog handler that receives masked records.
	handler slog.Handler
}

// NewSecureHandler creates a new SecureHandler wrapping the given handler.
// If handler is nil, the returned SecureHandler uses slog.Default().Handler().
func NewSecureHandler(handler slog.Handler) *SecureHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &SecureHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *SecureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record's attributes and passes it to the underlying handler.
func (h *SecureHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(h.maskAttr(a))
		return true
	})

	return h.handler.Handle(ctx, masked)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are masked before being added.
func (h *SecureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		maskedAttrs[i] = h.maskAttr(a)
	}
	return &SecureHandler{handler: h.handler.WithAttrs(maskedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *SecureHandler) WithGroup(name string) slog.Handler {
	return &SecureHandler{handler: h.handler.WithGroup(name)}
}

// maskAttr masks a single attribute, recursively handling groups.
func (h *SecureHandler) maskAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			maskedAttrs[i] = h.maskAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(maskedAttrs...)}
	}

	if maskedKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, MaskValue)
	}

	if a.Value.Kind() == slog.KindString {
		if isMaskedValue(a.Value.String()) {
			return slog.String(a.Key, MaskValue)
		}
	}

	return a
}

// isMaskedValue checks if a value matches credential patterns.
func isMaskedValue(value string) bool {
	for _, pattern := range maskedPatterns {
		if pattern.MatchString(value) {
			return true
		}
	}
	return false
}

// NewSecureLogger creates a new slog.Logger with credential masking.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewSecureLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	textHandler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewSecureHandler(textHandler))
}
