// Package copywriter contains the external text generation providers used
// to write ad copy.
package copywriter

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"campaign-desk/internal/core/domain"
)

var ErrIncompleteReply = errors.New("reply is missing headline, adCopy or tagline")

// reply is the JSON object the prompt asks the model to return.
type reply struct {
	Headline string `json:"headline"`
	AdCopy   string `json:"adCopy"`
	Tagline  string `json:"tagline"`
}

var strictPolicy = bluemonday.StrictPolicy()

// ParseReply decodes a model reply into ad copy. Markdown fences around the
// JSON are tolerated. Markup is stripped from every field and the result is
// cut to the length limits.
func ParseReply(content string) (domain.AdCopy, error) {
	content = stripFences(content)

	var r reply
	if err := json.Unmarshal([]byte(content), &r); err != nil {
		return domain.AdCopy{}, fmt.Errorf("decode reply: %w", err)
	}

	out := domain.AdCopy{
		Headline: sanitize(r.Headline),
		Body:     sanitize(r.AdCopy),
		Tagline:  sanitize(r.Tagline),
	}.Truncate()
	if !out.Complete() {
		return domain.AdCopy{}, ErrIncompleteReply
	}
	return out, nil
}

func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}

// maxSanitizeRounds bounds the unescape and sanitize loop for nested entity
// encodings.
const maxSanitizeRounds = 4

// sanitize reduces s to plain text. Entities are decoded before the strict
// policy runs so encoded markup is stripped too, and the loop repeats until
// the text is stable. Angle brackets that survive the last round are dropped.
func sanitize(s string) string {
	for range maxSanitizeRounds {
		next := html.UnescapeString(strictPolicy.Sanitize(html.UnescapeString(s)))
		if next == s {
			return strings.TrimSpace(s)
		}
		s = next
	}
	return strings.TrimSpace(strings.NewReplacer("<", "", ">", "").Replace(s))
}
