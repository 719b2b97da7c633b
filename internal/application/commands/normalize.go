package commands

import (
	"context"
	"fmt"

	"clearscene/internal/application"
	"clearscene/internal/domain"
	"clearscene/internal/ports"
)

// NormalizeResult describes one normalized identifier
type NormalizeResult struct {
	Sensor  string
	Tile    domain.Tile
	Date    string // YYYY-MM-DD
	Encoded string // the requested output encoding
	Honored bool   // false when product form was requested but unknown
}

// NormalizeCommand parses a scene identifier token and re-encodes it
type NormalizeCommand struct {
	resolver ports.ProductResolver // optional

	Token    string
	Encoding domain.IDEncoding
}

// NewNormalizeCommand creates a new NormalizeCommand
func NewNormalizeCommand(token string, encoding domain.IDEncoding) *NormalizeCommand {
	return &NormalizeCommand{Token: token, Encoding: encoding}
}

// WithResolver attaches a manifest-backed product resolver
func (c *NormalizeCommand) WithResolver(r ports.ProductResolver) *NormalizeCommand {
	c.resolver = r
	return c
}

// Validate checks the command configuration
func (c *NormalizeCommand) Validate() error {
	if c.Token == "" {
		return &application.ValidationError{Field: "token", Message: "identifier is required"}
	}
	if c.Encoding != domain.IDEncodingProduct && c.Encoding != domain.IDEncodingShort {
		return &application.ValidationError{
			Field:   "encoding",
			Message: fmt.Sprintf("invalid ID encoding %q (expected product or short)", c.Encoding),
		}
	}
	return nil
}

// Execute runs the normalization
func (c *NormalizeCommand) Execute(ctx context.Context) (*NormalizeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, err := domain.ParseSceneID(c.Token)
	if err != nil {
		return nil, err
	}

	if c.Encoding == domain.IDEncodingProduct && !id.HasProductFields() && c.resolver != nil {
		if resolved, ok := c.resolver.Resolve(id.Key()); ok {
			id = resolved
		}
	}
	encoded, honored := id.Encode(c.Encoding)

	return &NormalizeResult{
		Sensor:  id.Sensor,
		Tile:    id.Tile,
		Date:    id.Date.Format("2006-01-02"),
		Encoded: encoded,
		Honored: honored,
	}, nil
}
