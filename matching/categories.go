package matching

import "strings"

// General is the keyword used when an answer code is not recognised.
const General = "general"

var sectorByCode = map[string]string{
	"1": "food",
	"2": "handicraft",
	"3": "services",
	"4": General,
}

var pillarByCode = map[string]string{
	"1": "Access to finance",
	"2": "Skill development",
	"3": "Marketing assistance",
	"4": "Technology",
}

var registeredTokens = []string{"yes", "हाँ"}

// SectorKeyword maps a sector answer to the keyword searched in eligibility text.
func SectorKeyword(code string) string {
	if s, ok := sectorByCode[strings.TrimSpace(code)]; ok {
		return s
	}
	return General
}

// PillarKeyword maps an assistance answer to the keyword searched in the pillar.
func PillarKeyword(code string) string {
	if p, ok := pillarByCode[strings.TrimSpace(code)]; ok {
		return p
	}
	return General
}

// IsRegistered reports whether the registration answer is affirmative.
func IsRegistered(answer string) bool {
	return matchesToken(answer, registeredTokens)
}

func matchesToken(input string, tokens []string) bool {
	input = strings.TrimSpace(input)
	for _, t := range tokens {
		if strings.EqualFold(input, t) {
			return true
		}
	}
	return false
}
