package usecase

import (
	"fmt"

	"github.com/osteele/liquid"

	"campaign-desk/internal/core/domain"
)

// Fallback templates. interest is the first interest of the brief, or a
// generic phrase when the brief has none.
const (
	fallbackHeadline = `Discover {{ name }} Today`
	fallbackBody     = `Perfect for {{ age_range }} audiences in {{ location }} interested in {{ interest }}. Experience the difference today.`
	fallbackTagline  = `{{ name }} - Where Quality Meets Innovation`

	fallbackInterest = "our products"
)

// FallbackCopywriter renders ad copy locally from fixed liquid templates. It is
// the only generation path that needs no external service.
type FallbackCopywriter struct {
	headline *liquid.Template
	body     *liquid.Template
	tagline  *liquid.Template
}

// NewFallbackCopywriter parses the templates once.
func NewFallbackCopywriter() (*FallbackCopywriter, error) {
	engine := liquid.NewEngine()

	parse := func(name, src string) (*liquid.Template, error) {
		tpl, err := engine.ParseString(src)
		if err != nil {
			return nil, fmt.Errorf("parse fallback %s template: %w", name, err)
		}
		return tpl, nil
	}

	headline, err := parse("headline", fallbackHeadline)
	if err != nil {
		return nil, err
	}
	body, err := parse("body", fallbackBody)
	if err != nil {
		return nil, err
	}
	tagline, err := parse("tagline", fallbackTagline)
	if err != nil {
		return nil, err
	}
	return &FallbackCopywriter{headline: headline, body: body, tagline: tagline}, nil
}

// Render interpolates the brief into the templates. The result is cut to the
// ad copy length limits.
func (f *FallbackCopywriter) Render(brief domain.CopyBrief) (domain.AdCopy, error) {
	interest := fallbackInterest
	if len(brief.Interests) > 0 && brief.Interests[0] != "" {
		interest = brief.Interests[0]
	}
	bindings := map[string]any{
		"name":      brief.Name,
		"age_range": brief.AgeRange,
		"location":  brief.Location,
		"interest":  interest,
	}

	var (
		out domain.AdCopy
		err error
	)
	if out.Headline, err = f.headline.RenderString(bindings); err != nil {
		return domain.AdCopy{}, fmt.Errorf("render fallback headline: %w", err)
	}
	if out.Body, err = f.body.RenderString(bindings); err != nil {
		return domain.AdCopy{}, fmt.Errorf("render fallback body: %w", err)
	}
	if out.Tagline, err = f.tagline.RenderString(bindings); err != nil {
		return domain.AdCopy{}, fmt.Errorf("render fallback tagline: %w", err)
	}
	return out.Truncate(), nil
}
