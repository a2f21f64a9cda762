package port

import (
	"context"

	"campaign-desk/internal/core/domain"
)

// CopyProvider is an external text generation service. Implementations send
// the prompt, parse the structured reply and return an error on any transport
// or parsing failure.
type CopyProvider interface {
	// Name identifies the provider in logs.
	Name() string
	// Complete returns ad copy for the prompt.
	Complete(ctx context.Context, prompt domain.CopyPrompt) (domain.AdCopy, error)
}

// CopyUseCase generates ad copy for a campaign brief. The only error it
// returns is domain.ErrIncompleteInput; provider failures are absorbed and
// replaced with locally rendered copy.
type CopyUseCase interface {
	GenerateAdCopy(ctx context.Context, brief domain.CopyBrief) (domain.AdCopyResult, error)
}
