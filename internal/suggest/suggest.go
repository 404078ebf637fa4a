// internal/suggest/suggest.go

// Package suggest derives caption candidates from a picked image's file name,
// the asset type, and the tone. It is best-effort: a reference it cannot make
// sense of yields no suggestions, never an error.
package suggest

import (
	"path"
	"regexp"
	"strings"
	"unicode"

	"github.com/user/brandforge/internal/types"
)

const (
	maxSuggestions = 3
	maxKeywordLen  = 32
)

// genericNamePatterns match camera-roll style names that carry no usable
// keyword: IMG1234, DSC1234, or a leading YYYY-MM-DD date. Matched against
// the lower-cased cleaned name, after separators became spaces.
var genericNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^img ?\d+$`),
	regexp.MustCompile(`^dsc ?\d+$`),
	regexp.MustCompile(`^\d{4}[ -]\d{2}[ -]\d{2}\b`),
}

// Keyword extracts a display keyword from an image reference, or "" when the
// name is empty or generic. The result is title-cased and at most
// maxKeywordLen characters.
func Keyword(imageURI string) string {
	if imageURI == "" {
		return ""
	}
	name := path.Base(imageURI)
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', '.', '+':
			return ' '
		}
		return r
	}, name)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return ""
	}

	lower := strings.ToLower(cleaned)
	for _, re := range genericNamePatterns {
		if re.MatchString(lower) {
			return ""
		}
	}

	if runes := []rune(cleaned); len(runes) > maxKeywordLen {
		cleaned = strings.TrimRight(string(runes[:maxKeywordLen]), " ")
	}
	return titleCase(cleaned)
}

// Suggestions returns up to maxSuggestions caption candidates. A reference
// without a usable keyword yields nil: the heuristic is keyword-driven, and
// the filler lines only pad out keyword seeds.
func Suggestions(imageURI string, assetType types.AssetType, tone types.Tone) []string {
	keyword := Keyword(imageURI)
	if keyword == "" {
		return nil
	}

	candidates := []string{
		keyword + ".",
		"A little " + strings.ToLower(keyword) + " moment.",
	}
	candidates = append(candidates, fillersFor(assetType)...)

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, maxSuggestions)
	for _, c := range candidates {
		c = applyTone(c, tone)
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// applyTone rewrites a candidate for the requested tone. Neutral is identity.
func applyTone(s string, tone types.Tone) string {
	switch tone {
	case types.ToneConfident:
		if strings.HasSuffix(s, ".") && !strings.HasSuffix(s, "..") {
			s = strings.TrimSuffix(s, ".") + "!"
		}
		if rest, ok := strings.CutPrefix(s, "A small "); ok {
			s = "A bold " + rest
		}
	case types.ToneFriendly:
		if rest, ok := strings.CutPrefix(s, "New week."); ok {
			s = "New week—" + rest
		}
	}
	return s
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
