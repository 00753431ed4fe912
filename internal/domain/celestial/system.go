package celestial

import (
	"sort"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// SolarSystem is one generated system: a star owning planets (with moons) and
// asteroid belts (with fields), plus stations attached throughout the tree.
// Coordinates place the system within its region, in light-years.
type SolarSystem struct {
	Name        string
	Coordinates shared.Position
	Star        *Star
}

// Planets returns the star's planets in generation order.
func (s *SolarSystem) Planets() []*Planet {
	if s.Star == nil {
		return nil
	}
	planets := make([]*Planet, 0, len(s.Star.Children()))
	for _, child := range s.Star.Children() {
		if p, ok := child.(*Planet); ok {
			planets = append(planets, p)
		}
	}
	return planets
}

// Belts returns the star's asteroid belts in generation order.
func (s *SolarSystem) Belts() []*AsteroidBelt {
	if s.Star == nil {
		return nil
	}
	belts := make([]*AsteroidBelt, 0)
	for _, child := range s.Star.Children() {
		if b, ok := child.(*AsteroidBelt); ok {
			belts = append(belts, b)
		}
	}
	return belts
}

// PlanetByID resolves a planet by its id. Moons resolve their parents through
// this lookup.
func (s *SolarSystem) PlanetByID(id int) (*Planet, bool) {
	for _, p := range s.Planets() {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// AllBodies walks the tree depth-first: star, then each child and its
// descendants.
func (s *SolarSystem) AllBodies() []Body {
	if s.Star == nil {
		return nil
	}
	var out []Body
	var walk func(b Body)
	walk = func(b Body) {
		out = append(out, b)
		for _, child := range b.Children() {
			walk(child)
		}
	}
	walk(s.Star)
	return out
}

// AllStations collects every station attached anywhere in the tree.
func (s *SolarSystem) AllStations() []*Station {
	var out []*Station
	for _, b := range s.AllBodies() {
		out = append(out, b.Stations()...)
	}
	return out
}

// AllFields collects every asteroid field across all belts.
func (s *SolarSystem) AllFields() []*AsteroidField {
	var out []*AsteroidField
	for _, belt := range s.Belts() {
		out = append(out, belt.Fields()...)
	}
	return out
}

// IsInsideAnyField reports whether a position falls within any asteroid
// field's radius.
func (s *SolarSystem) IsInsideAnyField(pos shared.Position) bool {
	for _, f := range s.AllFields() {
		if f.Contains(pos) {
			return true
		}
	}
	return false
}

// FieldAt returns the asteroid field covering a position, if any.
func (s *SolarSystem) FieldAt(pos shared.Position) (*AsteroidField, bool) {
	for _, f := range s.AllFields() {
		if f.Contains(pos) {
			return f, true
		}
	}
	return nil, false
}

// NearestStation returns the station closest to a position.
func (s *SolarSystem) NearestStation(pos shared.Position) (*Station, bool) {
	stations := s.AllStations()
	if len(stations) == 0 {
		return nil, false
	}
	nearest := stations[0]
	minDistance := nearest.Position().DistanceTo(pos)
	for _, st := range stations[1:] {
		if d := st.Position().DistanceTo(pos); d < minDistance {
			minDistance = d
			nearest = st
		}
	}
	return nearest, true
}

// NearestField returns the asteroid field closest to a position.
func (s *SolarSystem) NearestField(pos shared.Position) (*AsteroidField, bool) {
	fields := s.AllFields()
	if len(fields) == 0 {
		return nil, false
	}
	nearest := fields[0]
	minDistance := nearest.Position().DistanceTo(pos)
	for _, f := range fields[1:] {
		if d := f.Position().DistanceTo(pos); d < minDistance {
			minDistance = d
			nearest = f
		}
	}
	return nearest, true
}

// ScanEntry is one line of a system scan, ordered by distance.
type ScanEntry struct {
	Kind     string
	Name     string
	ID       int
	Position shared.Position
	Distance float64
}

// Scan lists the closest entities (bodies, fields, stations) to a position,
// up to limit entries. A limit of zero or less returns everything.
func (s *SolarSystem) Scan(pos shared.Position, limit int) []ScanEntry {
	var entries []ScanEntry
	for _, b := range s.AllBodies() {
		entries = append(entries, ScanEntry{
			Kind:     string(b.Kind()),
			Name:     b.Name(),
			ID:       b.ID(),
			Position: b.Position(),
			Distance: b.Position().DistanceTo(pos),
		})
	}
	for _, f := range s.AllFields() {
		entries = append(entries, ScanEntry{
			Kind:     "asteroid_field",
			Name:     "Field",
			ID:       f.ID(),
			Position: f.Position(),
			Distance: f.Position().DistanceTo(pos),
		})
	}
	for _, st := range s.AllStations() {
		entries = append(entries, ScanEntry{
			Kind:     "station",
			Name:     st.Name(),
			ID:       st.ID(),
			Position: st.Position(),
			Distance: st.Position().DistanceTo(pos),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Distance < entries[j].Distance
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
