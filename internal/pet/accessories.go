package pet

// Accessory is a cosmetic unlockable purchased with the owner's XP.
type Accessory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Cost  int    `json:"cost"`
}

// Catalog lists every purchasable accessory. "none" is always owned and
// never appears here.
var Catalog = []Accessory{
	{ID: "crown", Name: "Royal Crown", Emoji: "👑", Cost: 50},
	{ID: "glasses", Name: "Cool Glasses", Emoji: "🕶️", Cost: 30},
	{ID: "bowtie", Name: "Fancy Bowtie", Emoji: "🎀", Cost: 40},
	{ID: "hat", Name: "Party Hat", Emoji: "🎩", Cost: 60},
	{ID: "star", Name: "Shining Star", Emoji: "⭐", Cost: 35},
	{ID: "heart", Name: "Lovely Heart", Emoji: "💖", Cost: 45},
}

// FindAccessory looks up a catalog entry by ID.
func FindAccessory(id string) (Accessory, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Accessory{}, false
}
