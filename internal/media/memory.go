package media

import (
	"context"
	"log/slog"
	"sync"
)

// MemoryResolver answers resolutions from a canned record without
// touching the network, recording every link it is asked about. Used
// in tests and when RESOLVER_MODE=memory.
type MemoryResolver struct {
	mutex sync.Mutex
	Links []string

	Record *Media
	Err    error
}

func NewMemoryResolver() *MemoryResolver {
	return &MemoryResolver{
		Record: &Media{
			PlayURL:      "http://localhost/testmedias/sample.mp4",
			Title:        "Sample video",
			AuthorHandle: "sampleauthor",
			CoverURL:     "http://localhost/testmedias/sample.jpg",
		},
	}
}

func (r *MemoryResolver) Resolve(_ context.Context, link string) (*Media, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.Links = append(r.Links, link)
	slog.Info("Memory resolution", slog.String("link", link))
	if r.Err != nil {
		return nil, r.Err
	}

	record := *r.Record
	return &record, nil
}

// CallCount returns how many resolutions were attempted.
func (r *MemoryResolver) CallCount() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return len(r.Links)
}
