package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/btmxh/tikgrab/internal/media"
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

const (
	MsgEmptyLink   = "Please paste a link."
	MsgUnreachable = "Unable to reach the resolution service. Check your connection and try again."
	MsgFetchFailed = "Unable to fetch this video."
)

// State is the submission state machine value. Exactly one phase is
// active: Link is set while loading, Message on error, Media on
// success. States are replaced on transition, never mutated.
type State struct {
	Phase   Phase
	Link    string
	Message string
	Media   *media.Media
}

func Idle() State {
	return State{Phase: PhaseIdle}
}

func Errored(message string) State {
	return State{Phase: PhaseError, Message: message}
}

// Begin validates a submission. Empty or whitespace-only input goes
// straight to the error phase without any network call; anything else
// enters the loading phase carrying the trimmed link.
func Begin(rawInput string) State {
	link := strings.TrimSpace(rawInput)
	if link == "" {
		return Errored(MsgEmptyLink)
	}

	return State{Phase: PhaseLoading, Link: link}
}

// Finish transitions out of the loading phase using the outcome of the
// resolution call.
func Finish(record *media.Media, err error) State {
	if err != nil {
		return Errored(DisplayMessage(err))
	}

	return State{Phase: PhaseSuccess, Media: record}
}

func Submit(ctx context.Context, resolver media.Resolver, rawInput string) State {
	state := Begin(rawInput)
	if state.Phase != PhaseLoading {
		return state
	}

	record, err := resolver.Resolve(ctx, state.Link)
	return Finish(record, err)
}

// DisplayMessage normalizes a resolution error into the single
// human-readable message shown on the page.
func DisplayMessage(err error) string {
	var apiErr *media.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Msg != "" {
			return apiErr.Msg
		}

		return MsgFetchFailed
	}

	if errors.Is(err, media.ErrUnreachable) {
		return MsgUnreachable
	}

	return MsgFetchFailed
}
