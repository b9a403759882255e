package domain

import "strings"

// Category labels a video by the hand-tuned keyword taxonomy below.
// The empty value means classification was not requested for the record.
type Category string

const (
	CategoryWestern Category = "western"
	CategoryTractor Category = "tractor"
	CategoryFamily  Category = "family"
	CategorySchool  Category = "school"
	CategoryOther   Category = "other"
)

// categoryKeywords is iterated in declaration order: when a text matches
// keywords from more than one category, the one declared first wins.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryWestern, []string{"western", "butseraen", "instrumental", "music", "town", "frontier", "cowboy", "wild west", "cinematic"}},
	{CategoryTractor, []string{"tractor", "landbouw", "farming", "agricultural", "machine", "traktor"}},
	{CategoryFamily, []string{"family", "helena", "efteling", "weekend", "holiday", "vacation", "trip", "marraine", "rachel"}},
	{CategorySchool, []string{"school", "scholenveld", "leerkrachten", "children", "event", "loop", "lebbeke"}},
}

// Classify maps a video's title and description to a category. It always
// returns a valid category; text without any known keyword is "other".
func Classify(title, description string) Category {
	text := strings.ToLower(title) + " " + strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, keyword) {
				return entry.category
			}
		}
	}
	return CategoryOther
}

// ParseCategory reports whether s names a known category.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryWestern:
		return CategoryWestern, true
	case CategoryTractor:
		return CategoryTractor, true
	case CategoryFamily:
		return CategoryFamily, true
	case CategorySchool:
		return CategorySchool, true
	case CategoryOther:
		return CategoryOther, true
	}
	return "", false
}

// FilterByCategory selects the videos labeled with the given category.
// It never touches upstream: the input page is all it looks at.
func FilterByCategory(videos []Video, category Category) []Video {
	out := make([]Video, 0, len(videos))
	for _, v := range videos {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}
