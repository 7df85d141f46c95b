package phh

import (
	"strings"

	"github.com/lox/pokerforms/poker"
)

var rankMap = map[string]string{
	"a":  "A",
	"k":  "K",
	"q":  "Q",
	"j":  "J",
	"10": "T",
	"t":  "T",
	"9":  "9",
	"8":  "8",
	"7":  "7",
	"6":  "6",
	"5":  "5",
	"4":  "4",
	"3":  "3",
	"2":  "2",
}

// NormalizeCard converts alternative notations (e.g. 10h, AH) to PHH notation (Th, Ah).
func NormalizeCard(card string) string {
	card = strings.TrimSpace(card)
	if card == "" {
		return ""
	}
	lowered := strings.ToLower(card)
	if lowered == "??" {
		return "??"
	}
	if len(lowered) < 2 {
		return strings.ToUpper(lowered)
	}

	suit := lowered[len(lowered)-1:]
	rankPart := lowered[:len(lowered)-1]
	rank, ok := rankMap[rankPart]
	if !ok {
		rank = strings.ToUpper(rankPart[:1])
	}

	return rank + suit
}

// parseDealt parses the card run of a deal action. Cards may be written
// back to back ("AsKd") or space separated, and "10" is accepted for tens.
func parseDealt(s string) ([]poker.Card, error) {
	s = strings.ReplaceAll(s, "10", "T")
	var b strings.Builder
	for _, tok := range strings.Fields(s) {
		for i := 0; i+1 < len(tok); i += 2 {
			b.WriteString(NormalizeCard(tok[i : i+2]))
		}
		if len(tok)%2 != 0 {
			b.WriteString(tok[len(tok)-1:])
		}
	}
	return poker.ParseCards(b.String())
}
