package policy

import (
	"regexp"
	"strings"
	"time"
)

// ProfanityMask replaces every blocked word regardless of its length.
const ProfanityMask = "***"

// ModerationSettings is the snapshot a moderation decision runs against.
// It is assembled from settings rows by the caller and passed by value; the
// decision never reads a store. Per-role flags are tri-state: nil falls back
// to RequiredDefault.
type ModerationSettings struct {
	RequiredDefault   bool
	RequiredTherapist *bool
	RequiredParent    *bool
	Overrides         map[uint64]bool
	ProfanityEnabled  bool
	Blocklist         []string
}

// RequiredFor resolves the layered moderation policy: per-user override first,
// then the author role's tri-state flag, then the global default. Unknown
// roles get the global default: moderation fails open, unlike visibility.
func (s ModerationSettings) RequiredFor(author Requester) bool {
	if s.Overrides[author.ID] {
		return true
	}
	switch author.Role {
	case RoleTherapist:
		if s.RequiredTherapist != nil {
			return *s.RequiredTherapist
		}
	case RoleParent:
		if s.RequiredParent != nil {
			return *s.RequiredParent
		}
	}
	return s.RequiredDefault
}

// PostInput is the raw text of a post being created, already length-validated
// upstream.
type PostInput struct {
	Title       string
	Body        string
	Unpublished bool
	PublishAt   *time.Time
}

// PostDecision is the computed initial state of a post. Held means the post
// waits in the admin review queue; scheduled or draft posts are unpublished
// without being held.
type PostDecision struct {
	Published bool
	Held      bool
	Title     string
	Body      string
}

// DecideModeration computes the initial publish state and stored text for a
// new post. Text goes through profanity masking first and angle-bracket
// stripping second; both apply whether or not the post is held.
func DecideModeration(author Requester, in PostInput, s ModerationSettings) PostDecision {
	held := s.RequiredFor(author)
	published := !held && !in.Unpublished && in.PublishAt == nil

	return PostDecision{
		Published: published,
		Held:      held,
		Title:     SanitizeText(s.maskProfanity(in.Title)),
		Body:      SanitizeText(s.maskProfanity(in.Body)),
	}
}

// maskProfanity replaces whole-word, case-insensitive blocklist matches with
// the mask. Each term compiles to its own pattern; a term that cannot compile
// is skipped so one bad settings row never disables the rest of the list.
func (s ModerationSettings) maskProfanity(text string) string {
	if !s.ProfanityEnabled || len(s.Blocklist) == 0 || text == "" {
		return text
	}
	for _, term := range s.Blocklist {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			continue
		}
		text = re.ReplaceAllString(text, ProfanityMask)
	}
	return text
}
