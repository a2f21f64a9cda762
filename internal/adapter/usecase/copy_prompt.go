package usecase

import (
	"fmt"
	"strings"

	"campaign-desk/internal/core/domain"
)

const copywriterSystemPrompt = "You are an expert advertising copywriter. " +
	"Create compelling ad copy based on the campaign details provided. " +
	"Always respond with valid JSON."

// BuildCopyPrompt renders the instruction pair sent to text generation
// providers. The output depends only on the brief.
func BuildCopyPrompt(brief domain.CopyBrief) domain.CopyPrompt {
	var b strings.Builder
	b.WriteString("Create ad copy for a campaign with the following details:\n")
	fmt.Fprintf(&b, "- Campaign name: %s\n", brief.Name)
	fmt.Fprintf(&b, "- Target age range: %s\n", brief.AgeRange)
	fmt.Fprintf(&b, "- Target location: %s\n", brief.Location)
	fmt.Fprintf(&b, "- Target interests: %s\n", strings.Join(brief.Interests, ", "))
	b.WriteString("\nPlease provide:\n")
	fmt.Fprintf(&b, "1. A catchy headline (max %d characters)\n", domain.HeadlineMaxLen)
	fmt.Fprintf(&b, "2. Ad copy (max %d characters)\n", domain.BodyMaxLen)
	fmt.Fprintf(&b, "3. A short tagline (max %d characters)\n", domain.TaglineMaxLen)
	b.WriteString("\nFormat your response as a JSON object with exactly these keys: headline, adCopy, tagline")

	return domain.CopyPrompt{
		System: copywriterSystemPrompt,
		User:   b.String(),
	}
}
