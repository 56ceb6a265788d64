package store

import (
	"testing"

	"bibtool/src/internal/schema"
)

func entry(key string, fields ...schema.Field) *schema.Entry {
	return &schema.Entry{Key: key, Type: "misc", Fields: fields}
}

func TestSortOrder(t *testing.T) {
	in := []*schema.Entry{
		entry("undated"),
		entry("zed-acl19"),
		entry("dated-late", schema.Field{Name: "year", Value: "2010"}),
		entry("amy-acl19"),
		entry("bob-nips21"),
		entry("old-icml99"),
		entry("dated-early", schema.Field{Name: "year", Value: "1990"}),
		entry("amy-aaai19"),
		entry("weird", schema.Field{Name: "year", Value: "in press"}),
	}
	want := []string{
		"bob-nips21",
		"amy-aaai19", "amy-acl19", "zed-acl19",
		"old-icml99",
		"dated-early", "dated-late",
		"undated", "weird",
	}
	got := Sort(in)
	for i, e := range got {
		if e.Key != want[i] {
			keys := make([]string, len(got))
			for j, g := range got {
				keys[j] = g.Key
			}
			t.Fatalf("Sort=%v want %v", keys, want)
		}
	}
	if in[0].Key != "undated" {
		t.Fatalf("input slice was reordered")
	}
}
