package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campaign-desk/internal/core/domain"
	"campaign-desk/internal/core/port"
)

// CopyUseCase generates ad copy through an external provider and falls back
// to locally rendered templates whenever the provider is missing or fails.
type CopyUseCase struct {
	provider port.CopyProvider
	fallback *FallbackCopywriter
	timeout  time.Duration
	metrics  port.Metrics
	logger   *slog.Logger
}

// NewCopyUseCase creates the ad copy usecase. provider may be nil when no
// credential is configured; every request then uses the fallback. timeout
// bounds a single provider call; zero disables the bound.
func NewCopyUseCase(provider port.CopyProvider, timeout time.Duration, metrics port.Metrics, logger *slog.Logger) (*CopyUseCase, error) {
	fallback, err := NewFallbackCopywriter()
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CopyUseCase{
		provider: provider,
		fallback: fallback,
		timeout:  timeout,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// GenerateAdCopy returns ad copy for the brief. An incomplete brief fails
// fast with domain.ErrIncompleteInput. Provider failures are logged and
// absorbed: the caller always receives usable copy.
//
// The provider call is detached from the caller's cancellation. A caller may
// stop waiting, but the request still resolves once, bounded by the timeout.
func (u *CopyUseCase) GenerateAdCopy(ctx context.Context, brief domain.CopyBrief) (domain.AdCopyResult, error) {
	if !brief.Complete() {
		return domain.AdCopyResult{}, domain.ErrIncompleteInput
	}

	if u.provider != nil {
		adCopy, err := u.complete(ctx, brief)
		if err == nil {
			u.metrics.AdCopyGenerated(domain.AdCopySourceAI)
			return domain.AdCopyResult{AdCopy: adCopy, Source: domain.AdCopySourceAI}, nil
		}
		u.logger.Warn("ad copy provider failed, using fallback",
			slog.String("provider", u.provider.Name()),
			slog.Any("error", err),
		)
	} else {
		u.logger.Debug("no ad copy provider configured, using fallback")
	}

	adCopy, err := u.fallback.Render(brief)
	if err != nil {
		return domain.AdCopyResult{}, err
	}
	u.metrics.AdCopyGenerated(domain.AdCopySourceFallback)
	return domain.AdCopyResult{AdCopy: adCopy, Source: domain.AdCopySourceFallback}, nil
}

// complete runs one provider call. Every failure is reported as
// domain.ErrGenerationUnavailable.
func (u *CopyUseCase) complete(ctx context.Context, brief domain.CopyBrief) (domain.AdCopy, error) {
	ctx = context.WithoutCancel(ctx)
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	adCopy, err := u.provider.Complete(ctx, BuildCopyPrompt(brief))
	if err != nil {
		return domain.AdCopy{}, fmt.Errorf("%w: %w", domain.ErrGenerationUnavailable, err)
	}
	adCopy = adCopy.Truncate()
	if !adCopy.Complete() {
		return domain.AdCopy{}, fmt.Errorf("%w: %w", domain.ErrGenerationUnavailable, errors.New("provider returned incomplete copy"))
	}
	return adCopy, nil
}
