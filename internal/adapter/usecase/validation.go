package usecase

import (
	"errors"
	"net/url"
	"strings"

	"campaign-desk/internal/core/domain"
)

// normalizeDraft checks a draft against the catalog and returns the cleaned
// copy that is handed to the store. Every failing field is reported; the
// returned error joins one *domain.ValidationError per field.
func normalizeDraft(draft domain.CampaignDraft, catalog domain.Catalog) (domain.CampaignDraft, error) {
	var errs []error

	out := domain.CampaignDraft{
		Name:            strings.TrimSpace(draft.Name),
		BannerReference: strings.TrimSpace(draft.BannerReference),
		AgeRange:        strings.TrimSpace(draft.AgeRange),
		Location:        strings.TrimSpace(draft.Location),
	}

	if out.Name == "" {
		errs = append(errs, domain.NewValidationError("name", "is required"))
	}

	switch {
	case out.AgeRange == "":
		errs = append(errs, domain.NewValidationError("age_range", "is required"))
	case !catalog.HasAgeRange(out.AgeRange):
		errs = append(errs, domain.NewValidationError("age_range", "%q is not a known age range", out.AgeRange))
	}

	switch {
	case out.Location == "":
		errs = append(errs, domain.NewValidationError("location", "is required"))
	case !catalog.HasLocation(out.Location):
		errs = append(errs, domain.NewValidationError("location", "%q is not a known location", out.Location))
	}

	seen := make(map[string]struct{}, len(draft.Interests))
	for _, interest := range draft.Interests {
		interest = strings.TrimSpace(interest)
		if _, dup := seen[interest]; dup {
			continue
		}
		seen[interest] = struct{}{}
		if !catalog.HasInterest(interest) {
			errs = append(errs, domain.NewValidationError("interests", "%q is not a known interest", interest))
			continue
		}
		out.Interests = append(out.Interests, interest)
	}
	if len(draft.Interests) == 0 {
		errs = append(errs, domain.NewValidationError("interests", "at least one interest is required"))
	}

	if out.BannerReference != "" && !validBannerReference(out.BannerReference) {
		errs = append(errs, domain.NewValidationError("banner_reference", "must be an image data URL or an http(s) URL"))
	}

	if draft.AdCopy != nil {
		adCopy := draft.AdCopy.Truncate()
		if !adCopy.Complete() {
			errs = append(errs, domain.NewValidationError("ad_copy", "headline, body and tagline are required"))
		}
		out.AdCopy = &adCopy
	}

	if len(errs) > 0 {
		return domain.CampaignDraft{}, errors.Join(errs...)
	}
	return out, nil
}

func validBannerReference(ref string) bool {
	if rest, ok := strings.CutPrefix(ref, "data:image/"); ok {
		return strings.Contains(rest, ";base64,")
	}
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateStatus(status domain.Status) error {
	if !status.IsReviewTarget() {
		return domain.NewValidationError("status", "must be %s or %s", domain.StatusApproved, domain.StatusRejected)
	}
	return nil
}
