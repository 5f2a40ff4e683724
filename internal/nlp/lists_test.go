package nlp

import (
	"testing"

	"github.com/ppiankov/storylint/internal/wordlist"
)

func TestListDetector_HasList(t *testing.T) {
	d := NewListDetector(newTestProcessor(nil))

	tests := []struct {
		text string
		want bool
	}{
		{"apple, banana and cherry", true},
		{"apple or banana", true},
		{"apple banana cherry", false},
		{"i see the red button", false},
		{`i see "apple, banana and cherry"`, false},
		{"", false},
	}
	for _, tt := range tests {
		text := tt.text
		if got := d.HasList(&text); got != tt.want {
			t.Errorf("HasList(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
	if d.HasList(nil) {
		t.Error("Expected absent chunk to have no list")
	}
}

func TestPotentialLists(t *testing.T) {
	text := "apple, banana and cherry"
	groups := potentialLists(text, []string{"apple", "banana", "cherry"})
	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d: %v", len(groups), groups)
	}
	if len(groups[0]) != 3 {
		t.Errorf("Expected 3 members, got %v", groups[0])
	}

	far := "apple is a fruit that grows on trees, cherry is too"
	if got := potentialLists(far, []string{"apple", "cherry"}); len(got) != 0 {
		t.Errorf("Expected distant phrases not to group, got %v", got)
	}
}

func TestListDetector_HasListOfVerbs(t *testing.T) {
	d := NewListDetector(newTestProcessor(map[string][]string{
		wordlist.VerbNounExceptions: {"report"},
		wordlist.VerbExceptions:     {"login"},
	}))

	tests := []struct {
		text string
		want bool
	}{
		{"i want to create and edit the page", true},
		{"i want to create or delete a page", true},
		{"i want to create a page", false},
		{"i want to report and delete", true},
		{"i want to create and login", false},
		{"apple and banana", false},
	}
	for _, tt := range tests {
		text := tt.text
		if got := d.HasListOfVerbs(&text); got != tt.want {
			t.Errorf("HasListOfVerbs(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
	if d.HasListOfVerbs(nil) {
		t.Error("Expected absent chunk to have no verb list")
	}
}
