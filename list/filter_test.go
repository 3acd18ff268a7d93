package list

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type filterCase struct {
	Name     string   `json:"name"`
	Labels   []string `json:"labels"`
	Query    string   `json:"query"`
	Expected []string `json:"expected"`
}

type filterCaseFile struct {
	Tests []filterCase `json:"tests"`
}

func loadFilterCases(t *testing.T) []filterCase {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "filter_tests.json"))
	if err != nil {
		t.Fatalf("Failed to read test data: %v", err)
	}
	var f filterCaseFile
	if err := json.Unmarshal(data, &f); err != nil {
		t.Fatalf("Failed to parse test data: %v", err)
	}
	return f.Tests
}

func itemsOf(labels ...string) []Item {
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = Item{Label: l}
	}
	return items
}

func labelsOf(items []Item) []string {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	return labels
}

func TestFilterCases(t *testing.T) {
	for _, tc := range loadFilterCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			got := labelsOf(Filter(itemsOf(tc.Labels...), tc.Query))
			if diff := cmp.Diff(tc.Expected, got); diff != "" {
				t.Errorf("Filter(%q) mismatch (-want +got):\n%s", tc.Query, diff)
			}
		})
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	source := itemsOf("b", "a", "c")
	got := Filter(source, "")
	if len(got) != len(source) || &got[0] != &source[0] {
		t.Fatalf("empty query should return the source slice itself")
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	source := itemsOf("Language 1", "Language 10", "Language 2", "Language 11", "Other")
	for _, q := range []string{"", "1", "LANG", "x", "e 1"} {
		once := Filter(source, q)
		twice := Filter(once, q)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Filter not idempotent for %q (-once +twice):\n%s", q, diff)
		}
	}
}

func TestFilterIsOrderedSubsequence(t *testing.T) {
	source := itemsOf("alpha", "beta", "gamma", "delta", "epsilon")
	got := Filter(source, "a")

	j := 0
	for _, it := range got {
		for j < len(source) && source[j] != it {
			j++
		}
		if j == len(source) {
			t.Fatalf("result %v is not a subsequence of source", labelsOf(got))
		}
		j++
	}
}

func TestMatchSpan(t *testing.T) {
	tests := []struct {
		label string
		query string
		want  Span
		ok    bool
	}{
		{"France", "ran", Span{1, 4}, true},
		{"France", "FR", Span{0, 2}, true},
		{"\U0001F1EB\U0001F1F7        France", "fra", Span{10, 13}, true},
		{"France", "", Span{}, true},
		{"France", "xyz", Span{}, false},
	}

	for _, tt := range tests {
		got, ok := Match(tt.label, tt.query)
		if ok != tt.ok {
			t.Errorf("Match(%q, %q) ok = %v, want %v", tt.label, tt.query, ok, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("Match(%q, %q) = %+v, want %+v", tt.label, tt.query, got, tt.want)
		}
	}
}

func TestGroupSizes(t *testing.T) {
	tests := []struct {
		count int
		size  int
		want  []int
	}{
		{60, 20, []int{20, 20, 20}},
		{45, 20, []int{20, 20, 5}},
		{5, 20, []int{5}},
		{3, 0, []int{3}},
		{0, 20, nil},
	}

	for _, tt := range tests {
		items := make([]Item, tt.count)
		groups := Group(items, tt.size)
		var sizes []int
		for _, g := range groups {
			sizes = append(sizes, len(g))
		}
		if diff := cmp.Diff(tt.want, sizes); diff != "" {
			t.Errorf("Group(%d items, %d) sizes mismatch (-want +got):\n%s", tt.count, tt.size, diff)
		}
	}
}

func TestGroupDoesNotAlias(t *testing.T) {
	groups := Group(itemsOf("a", "b", "c", "d"), 2)
	groups[0] = append(groups[0], Item{Label: "x"})
	if groups[1][0].Label != "c" {
		t.Fatalf("append to group 0 overwrote group 1: %v", labelsOf(groups[1]))
	}
}

func TestSelectPageBounds(t *testing.T) {
	groups := Group(itemsOf("a", "b", "c"), 2)

	for _, idx := range []int{-1, len(groups)} {
		_, err := SelectPage(groups, idx)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SelectPage(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
		var ie *IndexError
		if !errors.As(err, &ie) || ie.Index != idx || ie.Len != len(groups) {
			t.Errorf("SelectPage(%d) error = %#v, want *IndexError{%d, %d}", idx, err, idx, len(groups))
		}
	}

	page, err := SelectPage(groups, 0)
	if err != nil {
		t.Fatalf("SelectPage(0) unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, labelsOf(page)); diff != "" {
		t.Errorf("SelectPage(0) mismatch (-want +got):\n%s", diff)
	}
}
