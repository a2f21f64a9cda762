package port

import "campaign-desk/internal/core/domain"

// Metrics receives lifecycle events from the usecases.
type Metrics interface {
	CampaignCreated()
	CampaignStatusChanged(status domain.Status)
	AdCopyGenerated(source domain.AdCopySource)
	LoginAttempt(success bool)
	AnalyticsSynthesized()
}
