package workspace

import "testing"

func TestDeleteGroupCascade(t *testing.T) {
	groupA, err := NewLinkGroup("A")
	if err != nil {
		t.Fatalf("new group: %v", err)
	}
	groupB, err := NewLinkGroup("B")
	if err != nil {
		t.Fatalf("new group: %v", err)
	}
	groups := LinkGroups{}.Add(groupA).Add(groupB)

	l1, err := NewLink("one", "example.com/one", groupA.ID)
	if err != nil {
		t.Fatalf("new link: %v", err)
	}
	l2, err := NewLink("two", "https://example.com/two", groupB.ID)
	if err != nil {
		t.Fatalf("new link: %v", err)
	}
	links := Links{}.Add(l1).Add(l2)

	groups = groups.Delete(groupA.ID)
	links = links.DropGroup(groupA.ID)

	if len(groups) != 1 || groups[0].ID != groupB.ID {
		t.Fatalf("expected only group B, got %v", groups)
	}
	if len(links) != 1 || links[0].ID != l2.ID {
		t.Fatalf("expected only l2 to survive, got %v", links)
	}
}

func TestNormalizeURL(t *testing.T) {
	cases := map[string]string{
		"example.com":          "https://example.com",
		"http://example.com":   "http://example.com",
		"https://example.com":  "https://example.com",
		"drive.google.com/doc": "https://drive.google.com/doc",
	}
	for in, want := range cases {
		if got := NormalizeURL(in); got != want {
			t.Fatalf("NormalizeURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewLinkValidation(t *testing.T) {
	if _, err := NewLink("", "example.com", "g"); err == nil {
		t.Fatal("expected error for blank label")
	}
	if _, err := NewLink("label", "", "g"); err == nil {
		t.Fatal("expected error for blank url")
	}
	if _, err := NewLink("label", "example.com", ""); err == nil {
		t.Fatal("expected error for blank group")
	}
}
