package workspace

import (
	"errors"
	"strings"
)

// NewLinkGroup mints a vault group. Name is required.
func NewLinkGroup(name string) (LinkGroup, error) {
	if strings.TrimSpace(name) == "" {
		return LinkGroup{}, errors.New("workspace: group name required")
	}
	return LinkGroup{ID: NewID(), Name: name}, nil
}

// LinkGroups is the vault folder collection.
type LinkGroups []LinkGroup

// Add appends the group to a copy of the collection.
func (gs LinkGroups) Add(g LinkGroup) LinkGroups {
	out := make(LinkGroups, 0, len(gs)+1)
	out = append(out, gs...)
	return append(out, g)
}

// Delete removes the group with the given id. Callers must also drop the
// group's links; see Links.DropGroup.
func (gs LinkGroups) Delete(id string) LinkGroups {
	out := make(LinkGroups, 0, len(gs))
	for _, g := range gs {
		if g.ID != id {
			out = append(out, g)
		}
	}
	return out
}

// Find returns the group with the given id.
func (gs LinkGroups) Find(id string) (LinkGroup, bool) {
	for _, g := range gs {
		if g.ID == id {
			return g, true
		}
	}
	return LinkGroup{}, false
}

// NormalizeURL prefixes schemeless urls with https://.
func NormalizeURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// NewLink mints a vault link. Label, url and group are all required; the url
// is normalized to carry a scheme.
func NewLink(label, rawURL, groupID string) (Link, error) {
	if strings.TrimSpace(label) == "" {
		return Link{}, errors.New("workspace: link label required")
	}
	if strings.TrimSpace(rawURL) == "" {
		return Link{}, errors.New("workspace: link url required")
	}
	if strings.TrimSpace(groupID) == "" {
		return Link{}, errors.New("workspace: link group required")
	}
	return Link{
		ID:      NewID(),
		Label:   label,
		URL:     NormalizeURL(rawURL),
		GroupID: groupID,
	}, nil
}

// Links is the vault bookmark collection.
type Links []Link

// Add appends the link to a copy of the collection.
func (ls Links) Add(l Link) Links {
	out := make(Links, 0, len(ls)+1)
	out = append(out, ls...)
	return append(out, l)
}

// Delete removes the link with the given id.
func (ls Links) Delete(id string) Links {
	out := make(Links, 0, len(ls))
	for _, l := range ls {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}

// DropGroup removes every link filed under the given group.
func (ls Links) DropGroup(groupID string) Links {
	out := make(Links, 0, len(ls))
	for _, l := range ls {
		if l.GroupID != groupID {
			out = append(out, l)
		}
	}
	return out
}

// InGroup returns the links filed under the given group.
func (ls Links) InGroup(groupID string) Links {
	out := make(Links, 0)
	for _, l := range ls {
		if l.GroupID == groupID {
			out = append(out, l)
		}
	}
	return out
}
