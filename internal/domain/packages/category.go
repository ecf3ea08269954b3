package packages

type Category string

const (
	CategoryTrekking     Category = "TREKKING"
	CategoryHillsStay    Category = "HILLS_STAYCATION"
	CategoryJungleSafari Category = "JUNGLE_SAFARI"
	CategoryLodging      Category = "LODGING"
)

// Categories lists all known categories in catalog display order.
var Categories = []Category{
	CategoryTrekking,
	CategoryHillsStay,
	CategoryJungleSafari,
	CategoryLodging,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryTrekking, CategoryHillsStay, CategoryJungleSafari, CategoryLodging:
		return true
	}
	return false
}

var categoryLabels = map[Category]string{
	CategoryTrekking:     "Trekking",
	CategoryHillsStay:    "Hills Staycation",
	CategoryJungleSafari: "Jungle Safari",
	CategoryLodging:      "Lodging",
}

var categoryBlurbs = map[Category]string{
	CategoryTrekking:     "Multi-day guided treks with campsite support and alpine thrills.",
	CategoryHillsStay:    "Slow down in boutique hill stays with curated meals and bonfires.",
	CategoryJungleSafari: "Immersive wild escapes with certified guides and protected reserve permits.",
	CategoryLodging:      "Rustic homestays and lodges that keep you close to nature and local life.",
}

// Label returns the human readable name for the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// Blurb returns the short catalog description for the category.
func (c Category) Blurb() string {
	return categoryBlurbs[c]
}
