package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/btmxh/tikgrab/internal/media"
)

func TestIdleState(t *testing.T) {
	state := Idle()
	if state.Phase != PhaseIdle || state.Message != "" || state.Media != nil {
		t.Fatalf("Unexpected idle state: %+v", state)
	}
}

func TestSubmitEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\t", " \n "} {
		resolver := media.NewMemoryResolver()
		state := Submit(context.Background(), resolver, input)

		if state.Phase != PhaseError {
			t.Fatalf("Submit(%q): expected error phase, got %s", input, state.Phase)
		}
		if state.Message != MsgEmptyLink {
			t.Fatalf("Submit(%q): unexpected message %q", input, state.Message)
		}
		if resolver.CallCount() != 0 {
			t.Fatalf("Submit(%q): expected no resolution calls, got %d", input, resolver.CallCount())
		}
	}
}

func TestSubmitSuccess(t *testing.T) {
	resolver := media.NewMemoryResolver()
	resolver.Record = &media.Media{
		PlayURL:      "https://cdn/x.mp4",
		Title:        "T",
		AuthorHandle: "user",
		CoverURL:     "https://cdn/c.jpg",
	}

	state := Submit(context.Background(), resolver, "https://www.tiktok.com/@user/video/1")
	if state.Phase != PhaseSuccess {
		t.Fatalf("Expected success phase, got %s (%s)", state.Phase, state.Message)
	}
	if state.Media.PlayURL != "https://cdn/x.mp4" {
		t.Errorf("Unexpected play URL: %q", state.Media.PlayURL)
	}
	if state.Media.Title != "T" || state.Media.AuthorHandle != "user" || state.Media.CoverURL != "https://cdn/c.jpg" {
		t.Errorf("Unexpected media record: %+v", state.Media)
	}

	if resolver.CallCount() != 1 {
		t.Fatalf("Expected one resolution call, got %d", resolver.CallCount())
	}
	if resolver.Links[0] != "https://www.tiktok.com/@user/video/1" {
		t.Fatalf("Unexpected resolved link: %q", resolver.Links[0])
	}
}

func TestSubmitTrimsInput(t *testing.T) {
	state := Begin("  https://www.tiktok.com/@user/video/1  ")
	if state.Phase != PhaseLoading {
		t.Fatalf("Expected loading phase, got %s", state.Phase)
	}
	if state.Link != "https://www.tiktok.com/@user/video/1" {
		t.Fatalf("Expected trimmed link, got %q", state.Link)
	}
}

func TestSubmitAPIError(t *testing.T) {
	resolver := media.NewMemoryResolver()
	resolver.Err = &media.APIError{Code: 1, Msg: "Video not found"}

	state := Submit(context.Background(), resolver, "https://www.tiktok.com/@user/video/404")
	if state.Phase != PhaseError {
		t.Fatalf("Expected error phase, got %s", state.Phase)
	}
	if state.Message != "Video not found" {
		t.Fatalf("Expected API-supplied message, got %q", state.Message)
	}
}

func TestSubmitAPIErrorWithoutMessage(t *testing.T) {
	resolver := media.NewMemoryResolver()
	resolver.Err = &media.APIError{Code: -1}

	state := Submit(context.Background(), resolver, "https://www.tiktok.com/@user/video/1")
	if state.Message != MsgFetchFailed {
		t.Fatalf("Expected fallback message, got %q", state.Message)
	}
}

func TestSubmitTransportError(t *testing.T) {
	resolver := media.NewMemoryResolver()
	resolver.Err = media.ErrUnreachable

	state := Submit(context.Background(), resolver, "https://www.tiktok.com/@user/video/1")
	if state.Phase != PhaseError {
		t.Fatalf("Expected error phase, got %s", state.Phase)
	}
	if state.Message != MsgUnreachable {
		t.Fatalf("Expected connectivity message, got %q", state.Message)
	}
}

func TestSubmitUnexpectedError(t *testing.T) {
	resolver := media.NewMemoryResolver()
	resolver.Err = errors.New("boom")

	state := Submit(context.Background(), resolver, "https://www.tiktok.com/@user/video/1")
	if state.Phase != PhaseError {
		t.Fatalf("Expected error phase, got %s", state.Phase)
	}
	if state.Message != MsgFetchFailed {
		t.Fatalf("Expected fallback message, got %q", state.Message)
	}
}
