package domain

// rankColors maps rank tier to its badge color. Declared as an array so
// RankTiers stays a compile-time constant.
var rankColors = [...]string{
	"#333333",
	"#CB643B",
	"#96C86F",
	"#66AEBC",
	"#C15F78",
	"#705B9C",
	"#D7644F",
	"#7DD1BA",
	"#E75CC0",
	"#B37134",
	"#A89F96",
	"#D9963F",
}

// RankTiers is the number of ranked ladder tiers.
const RankTiers = len(rankColors)

// Rank is one tier of the ranked ladder.
type Rank struct {
	Tier  int    `json:"tier"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RankColor returns the badge color for a tier, empty for out-of-range tiers.
func RankColor(tier int) string {
	if tier < 0 || tier >= len(rankColors) {
		return ""
	}
	return rankColors[tier]
}
