// Package lookup holds the static reference tables the extractors depend on:
// the player-name → role table and the champion → class table. Both are plain
// injected data so tests can substitute fixtures without process-wide state.
package lookup

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"scoutahead/internal/model"
)

// ChampionClass describes one champion's class tags and whether its kit
// carries hard crowd control.
type ChampionClass struct {
	Classes []string `yaml:"classes" json:"classes"`
	HardCC  bool     `yaml:"hardCC" json:"hardCC"`
}

// Tables bundles the reference data passed into the extractor layer.
type Tables struct {
	// Roles maps a normalized player display name to a lane role.
	Roles map[string]model.Role `yaml:"roles"`
	// Champions maps a champion/agent name to its class profile.
	Champions map[string]ChampionClass `yaml:"champions"`
}

// RoleFromName resolves a player display name to a role. Unknown names are
// legitimate and return RoleUnknown; every per-role analysis skips them.
func (t *Tables) RoleFromName(name string) model.Role {
	if t == nil || t.Roles == nil {
		return model.RoleUnknown
	}
	if r, ok := t.Roles[normalizeName(name)]; ok {
		return r
	}
	return model.RoleUnknown
}

// ClassOf returns the class profile for a champion and whether it is known.
func (t *Tables) ClassOf(champion string) (ChampionClass, bool) {
	if t == nil || t.Champions == nil {
		return ChampionClass{}, false
	}
	c, ok := t.Champions[champion]
	return c, ok
}

// normalizeName lower-cases and strips the "Team Tag " prefix convention
// ("T1 Gumayusi" → "gumayusi") so table keys stay tag-agnostic.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}

// Load reads a Tables document from a YAML file.
func Load(path string) (*Tables, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lookup tables: %w", err)
	}
	return Parse(b)
}

// Parse decodes a Tables document. Role names are normalized the same way
// RoleFromName normalizes queries.
func Parse(b []byte) (*Tables, error) {
	var raw struct {
		Roles     map[string]string        `yaml:"roles"`
		Champions map[string]ChampionClass `yaml:"champions"`
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("decode lookup tables: %w", err)
	}
	t := &Tables{
		Roles:     make(map[string]model.Role, len(raw.Roles)),
		Champions: raw.Champions,
	}
	for name, role := range raw.Roles {
		r, err := parseRole(role)
		if err != nil {
			return nil, fmt.Errorf("role for %q: %w", name, err)
		}
		t.Roles[normalizeName(name)] = r
	}
	return t, nil
}

func parseRole(s string) (model.Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return model.RoleTop, nil
	case "jungle", "jg":
		return model.RoleJungle, nil
	case "mid", "middle":
		return model.RoleMid, nil
	case "bot", "adc", "bottom", "carry":
		return model.RoleBot, nil
	case "support", "sup", "utility":
		return model.RoleSupport, nil
	case "unknown", "":
		return model.RoleUnknown, nil
	}
	return model.RoleUnknown, fmt.Errorf("unrecognized role %q", s)
}

// Merge overlays other onto t, returning a new Tables. Entries in other win.
func (t *Tables) Merge(other *Tables) *Tables {
	if other == nil {
		return t
	}
	out := &Tables{
		Roles:     make(map[string]model.Role, len(t.Roles)+len(other.Roles)),
		Champions: make(map[string]ChampionClass, len(t.Champions)+len(other.Champions)),
	}
	for k, v := range t.Roles {
		out.Roles[k] = v
	}
	for k, v := range other.Roles {
		out.Roles[k] = v
	}
	for k, v := range t.Champions {
		out.Champions[k] = v
	}
	for k, v := range other.Champions {
		out.Champions[k] = v
	}
	return out
}
