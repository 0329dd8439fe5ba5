package entity

import "testing"

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func TestItemUpdatesIsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		updates ItemUpdates
		want    bool
	}{
		{"zero value", ItemUpdates{}, true},
		{"name only", ItemUpdates{Name: strPtr("atelier")}, false},
		{"count only", ItemUpdates{ImgMaxCount: intPtr(8)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.updates.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemUpdatesToMapColumns(t *testing.T) {
	updates := ItemUpdates{
		Name:        strPtr("atelier"),
		ImgMaxCount: intPtr(8),
	}
	values := updates.ToMap()
	if len(values) != 2 {
		t.Fatalf("ToMap() size = %d, want 2", len(values))
	}
	if values["name"] != "atelier" {
		t.Errorf("name = %v, want atelier", values["name"])
	}
	if values["img_max_count"] != 8 {
		t.Errorf("img_max_count = %v, want 8", values["img_max_count"])
	}
}

func TestLinkUpdatesIsEmpty(t *testing.T) {
	if !(LinkUpdates{}).IsEmpty() {
		t.Error("zero LinkUpdates should be empty")
	}
	main := true
	if (LinkUpdates{IsMain: &main}).IsEmpty() {
		t.Error("LinkUpdates with IsMain should not be empty")
	}
}

func TestTaxonomyUpdatesIsEmpty(t *testing.T) {
	if !(CategoryUpdates{}).IsEmpty() {
		t.Error("zero CategoryUpdates should be empty")
	}
	if (CategoryUpdates{Name: strPtr(CategoryHall)}).IsEmpty() {
		t.Error("CategoryUpdates with Name should not be empty")
	}
	if !(TagUpdates{}).IsEmpty() {
		t.Error("zero TagUpdates should be empty")
	}
	if (TagUpdates{Name: strPtr(TagLuv)}).IsEmpty() {
		t.Error("TagUpdates with Name should not be empty")
	}
}
