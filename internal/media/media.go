package media

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Media is the record resolved from a single short-video share link.
// Title may be empty; the other fields are populated on every
// successful resolution.
type Media struct {
	PlayURL      string
	Title        string
	AuthorHandle string
	CoverURL     string
}

var ErrUnreachable = errors.New("Resolution service unreachable")

// APIError is a failure reported by the resolution API itself: either a
// non-zero envelope code or a payload without a playable URL.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("Resolution API error (code %d)", e.Code)
	}

	return fmt.Sprintf("Resolution API error (code %d): %s", e.Code, e.Msg)
}

type Resolver interface {
	Resolve(ctx context.Context, link string) (*Media, error)
}

var DefaultResolver Resolver

func InitResolver() error {
	mode := os.Getenv("RESOLVER_MODE")
	if mode == "" {
		mode = "tikwm"
	}

	switch mode {
	case "tikwm":
		DefaultResolver = NewTikwmResolver(os.Getenv("RESOLVER_API_URL"))
		return nil
	case "memory":
		DefaultResolver = NewMemoryResolver()
		return nil
	default:
		return fmt.Errorf("Invalid resolver mode: %s", mode)
	}
}

func Resolve(ctx context.Context, link string) (*Media, error) {
	return DefaultResolver.Resolve(ctx, link)
}
