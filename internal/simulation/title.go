package simulation

import (
	"strings"

	"github.com/jonathan/career-simulator/internal/types"
)

// strippablePrefixes are the recognized seniority prefixes removed from a
// title before the new level's prefix is applied. Longer prefixes come first
// so "Senior Staff" is stripped before "Senior".
var strippablePrefixes = []string{
	"Senior Staff ",
	"VP of ",
	"Director of ",
	"Junior ",
	"Associate ",
	"Senior ",
	"Staff ",
	"Lead ",
	"Principal ",
	"Distinguished ",
}

// levelTitlePrefix maps a career level to the prefix applied on promotion.
var levelTitlePrefix = map[types.CareerLevel]string{
	types.LevelEntry:     "Junior ",
	types.LevelMid:       "",
	types.LevelSenior:    "Senior ",
	types.LevelLead:      "Lead ",
	types.LevelPrincipal: "Principal ",
	types.LevelExecutive: "VP of ",
}

// BaseTitle strips any recognized seniority prefix from a title.
func BaseTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	for _, prefix := range strippablePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
		}
	}
	return trimmed
}

// TitleForLevel derives a plausible new title when a promotion to the given
// level occurs, e.g. ("Senior Software Engineer", Lead) -> "Lead Software Engineer".
func TitleForLevel(currentTitle string, level types.CareerLevel) string {
	base := BaseTitle(currentTitle)
	if base == "" {
		base = currentTitle
	}
	return levelTitlePrefix[level] + base
}
