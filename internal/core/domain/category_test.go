package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        Category
	}{
		{
			name:  "western keyword in title",
			title: "Frontier Town at Dusk",
			want:  CategoryWestern,
		},
		{
			name:        "western keyword in description only",
			title:       "New upload",
			description: "An instrumental piece recorded last week",
			want:        CategoryWestern,
		},
		{
			name:  "case insensitive match",
			title: "WILD WEST sessions",
			want:  CategoryWestern,
		},
		{
			name:  "tractor keyword",
			title: "Oldtimer traktor meeting",
			want:  CategoryTractor,
		},
		{
			name:        "family keyword",
			title:       "Efteling",
			description: "Daytrip with Helena",
			want:        CategoryFamily,
		},
		{
			name:  "school keyword",
			title: "Scholenveldloop Lebbeke",
			want:  CategorySchool,
		},
		{
			name:        "earlier category wins on multiple matches",
			title:       "Cowboy tractor parade",
			description: "farming machines and western tunes",
			want:        CategoryWestern,
		},
		{
			name:        "tractor beats school when both match",
			title:       "Farming event at school",
			description: "",
			want:        CategoryTractor,
		},
		{
			name:  "no keyword",
			title: "Untitled clip",
			want:  CategoryOther,
		},
		{
			name: "empty text",
			want: CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.title, tt.description)
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{"western", CategoryWestern, true},
		{" Tractor ", CategoryTractor, true},
		{"FAMILY", CategoryFamily, true},
		{"school", CategorySchool, true},
		{"other", CategoryOther, true},
		{"all", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	videos := []Video{
		{ID: "a", Category: CategoryWestern},
		{ID: "b", Category: CategoryOther},
		{ID: "c", Category: CategoryWestern},
	}

	western := FilterByCategory(videos, CategoryWestern)
	if len(western) != 2 || western[0].ID != "a" || western[1].ID != "c" {
		t.Errorf("FilterByCategory western = %v", western)
	}

	// Nothing on this page is a tractor video: the filter yields an empty
	// set without going anywhere near upstream.
	tractor := FilterByCategory(videos, CategoryTractor)
	if len(tractor) != 0 {
		t.Errorf("FilterByCategory tractor = %v, want empty", tractor)
	}
}
