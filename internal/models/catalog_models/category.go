package catalog_models

import "strings"

// Category is one of the closed set of interest categories a location can be
// tagged with. The set mirrors the Category_* columns of the source dataset.
type Category int

const (
	CategoryWaterfallsLakes Category = iota
	CategoryHistory
	CategoryNature
	CategoryAdventure
	CategoryBeaches
	CategoryReligiousSpiritual
	CategoryNationalParksWildlife
	CategoryHikingMountain
	CategoryGardensBotanical
	CategoryUrbanCity
	CategoryAyurvedaWellness
	CategoryWaterSports

	categoryCount
)

var categoryNames = [...]string{
	CategoryWaterfallsLakes:       "Waterfalls_Lakes",
	CategoryHistory:               "History",
	CategoryNature:                "Nature",
	CategoryAdventure:             "Adventure",
	CategoryBeaches:               "Beaches",
	CategoryReligiousSpiritual:    "Religious_Spiritual",
	CategoryNationalParksWildlife: "National_Parks_Wildlife",
	CategoryHikingMountain:        "Hiking_Mountain",
	CategoryGardensBotanical:      "Gardens_Botanical",
	CategoryUrbanCity:             "Urban_City",
	CategoryAyurvedaWellness:      "Ayurveda_Wellness",
	CategoryWaterSports:           "Water_Sports",
}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return "Unknown"
	}
	return categoryNames[c]
}

// AllCategories returns every known category in declaration order.
func AllCategories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// normalizeInterest collapses whitespace runs to single underscores and lowers
// the result, so "  water   sports " and "Water_Sports" compare equal.
func normalizeInterest(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(strings.ReplaceAll(s, "_", " ")), "_"))
}

var categoryByKey = func() map[string]Category {
	m := make(map[string]Category, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		m[normalizeInterest(categoryNames[c])] = c
	}
	return m
}()

// ParseCategory maps a free-form interest name ("water sports", "History") to
// its category. The second return is false for names outside the known set.
func ParseCategory(interest string) (Category, bool) {
	c, ok := categoryByKey[normalizeInterest(interest)]
	return c, ok
}

// CategorySet is an immutable set of category flags, resolved once at catalog
// load time from the dataset's per-category columns.
type CategorySet uint16

func NewCategorySet(cats ...Category) CategorySet {
	var s CategorySet
	for _, c := range cats {
		s = s.with(c)
	}
	return s
}

func (s CategorySet) with(c Category) CategorySet {
	if c < 0 || c >= categoryCount {
		return s
	}
	return s | 1<<uint(c)
}

func (s CategorySet) Has(c Category) bool {
	if c < 0 || c >= categoryCount {
		return false
	}
	return s&(1<<uint(c)) != 0
}

// Names returns the set's category names in declaration order.
func (s CategorySet) Names() []string {
	var out []string
	for c := Category(0); c < categoryCount; c++ {
		if s.Has(c) {
			out = append(out, categoryNames[c])
		}
	}
	return out
}
