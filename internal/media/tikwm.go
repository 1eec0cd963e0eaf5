package media

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultEndpoint is the public tikwm resolution API. It takes the
// share link as a percent-encoded `url` query parameter and answers
// with a JSON envelope.
const DefaultEndpoint = "https://www.tikwm.com/api/"

type TikwmResolver struct {
	endpoint string
	client   *http.Client
}

func NewTikwmResolver(endpoint string) *TikwmResolver {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &TikwmResolver{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type tikwmAuthor struct {
	Nickname string `json:"nickname"`
}

type tikwmData struct {
	Play   string      `json:"play"`
	Title  string      `json:"title"`
	Author tikwmAuthor `json:"author"`
	Cover  string      `json:"cover"`
}

type tikwmEnvelope struct {
	Code int        `json:"code"`
	Msg  string     `json:"msg"`
	Data *tikwmData `json:"data"`
}

func (r *TikwmResolver) Resolve(ctx context.Context, link string) (*Media, error) {
	reqUrl := r.endpoint + "?url=" + url.QueryEscape(link)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, err
	}

	slog.Debug("Resolving share link", "link", link)
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUnreachable, resp.Status)
	}

	var envelope tikwmEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	if envelope.Code != 0 || envelope.Data == nil || envelope.Data.Play == "" {
		return nil, &APIError{Code: envelope.Code, Msg: envelope.Msg}
	}

	return &Media{
		PlayURL:      envelope.Data.Play,
		Title:        envelope.Data.Title,
		AuthorHandle: envelope.Data.Author.Nickname,
		CoverURL:     envelope.Data.Cover,
	}, nil
}
