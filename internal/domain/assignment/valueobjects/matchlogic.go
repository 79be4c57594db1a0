package valueobjects

import "strings"

// MatchLogic is the boolean combinator applied across a rule's criteria.
type MatchLogic string

const (
	MatchLogicAnd MatchLogic = "AND"
	MatchLogicOr  MatchLogic = "OR"
)

func (m MatchLogic) String() string {
	return string(m)
}

// NormalizeMatchLogic maps free-form input onto a combinator. Anything that
// is not OR (case-insensitive) falls back to AND, including the empty string.
func NormalizeMatchLogic(value string) MatchLogic {
	if strings.EqualFold(strings.TrimSpace(value), string(MatchLogicOr)) {
		return MatchLogicOr
	}
	return MatchLogicAnd
}
