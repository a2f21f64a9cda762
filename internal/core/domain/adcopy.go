package domain

import "strings"

// Length limits requested from the copywriter and enforced on every result.
const (
	HeadlineMaxLen = 60
	BodyMaxLen     = 200
	TaglineMaxLen  = 50
)

// AdCopy is the generated text attached to a campaign.
type AdCopy struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
	Tagline  string `json:"tagline"`
}

// Complete reports whether all three fields carry text.
func (a AdCopy) Complete() bool {
	return strings.TrimSpace(a.Headline) != "" &&
		strings.TrimSpace(a.Body) != "" &&
		strings.TrimSpace(a.Tagline) != ""
}

// Truncate trims surrounding whitespace and cuts every field to its limit.
func (a AdCopy) Truncate() AdCopy {
	return AdCopy{
		Headline: truncateRunes(strings.TrimSpace(a.Headline), HeadlineMaxLen),
		Body:     truncateRunes(strings.TrimSpace(a.Body), BodyMaxLen),
		Tagline:  truncateRunes(strings.TrimSpace(a.Tagline), TaglineMaxLen),
	}
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit]))
}

// AdCopySource tells where a piece of ad copy came from.
type AdCopySource string

const (
	AdCopySourceAI       AdCopySource = "ai"
	AdCopySourceFallback AdCopySource = "fallback"
)

// AdCopyResult is the outcome of a generation request. It always carries
// usable copy.
type AdCopyResult struct {
	AdCopy AdCopy       `json:"ad_copy"`
	Source AdCopySource `json:"source"`
}

// CopyBrief is the subset of campaign attributes the copywriter works from.
type CopyBrief struct {
	Name      string   `json:"name"`
	AgeRange  string   `json:"age_range"`
	Location  string   `json:"location"`
	Interests []string `json:"interests"`
}

// Complete reports whether every attribute needed for a prompt is present.
func (b CopyBrief) Complete() bool {
	return strings.TrimSpace(b.Name) != "" &&
		strings.TrimSpace(b.AgeRange) != "" &&
		strings.TrimSpace(b.Location) != "" &&
		len(b.Interests) > 0
}

// CopyPrompt is the role-tagged instruction pair sent to a text generation
// provider.
type CopyPrompt struct {
	System string
	User   string
}
