// internal/suggest/tables.go
package suggest

import "github.com/user/brandforge/internal/types"

// fillerCaptions holds the per-type filler lines appended after the keyword
// seeds. Kept in one table so the copy can be tuned without touching the
// heuristic. Types without an entry fall back to defaultFillers.
var fillerCaptions = map[types.AssetType][]string{
	types.AssetTypeInstagramStory: {
		"New week. Fresh start.",
		"Behind the scenes today.",
	},
	types.AssetTypeLinkedInBanner: {
		"Building something new.",
		"A small step, a big week for the team.",
	},
}

var defaultFillers = []string{
	"Fresh from the studio.",
	"A small thing we are proud of.",
}

func fillersFor(t types.AssetType) []string {
	if lines, ok := fillerCaptions[t]; ok {
		return lines
	}
	return defaultFillers
}
