package usecase

import "campaign-desk/internal/core/domain"

// nopMetrics discards events when no collector is wired.
type nopMetrics struct{}

func (nopMetrics) CampaignCreated() {}

func (nopMetrics) CampaignStatusChanged(domain.Status) {}

func (nopMetrics) AdCopyGenerated(domain.AdCopySource) {}

func (nopMetrics) LoginAttempt(bool) {}

func (nopMetrics) AnalyticsSynthesized() {}
