package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/ore"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// Snapshot types flatten the celestial object tree into plain structs for
// JSON storage. Ores serialize as catalog ids; habitability results are
// recomputed on load, never stored.

type SystemSnapshot struct {
	Name        string          `json:"name"`
	Coordinates shared.Position `json:"coordinates"`
	Star        StarSnapshot    `json:"star"`
}

type StarSnapshot struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Position    shared.Position   `json:"position"`
	Class       string            `json:"class"`
	Color       string            `json:"color"`
	Temperature float64           `json:"temperature"`
	Luminosity  float64           `json:"luminosity"`
	Mass        float64           `json:"mass"`
	Radius      float64           `json:"radius"`
	Age         float64           `json:"age"`
	Planets     []PlanetSnapshot  `json:"planets"`
	Belts       []BeltSnapshot    `json:"belts"`
	Stations    []StationSnapshot `json:"stations"`
}

type PlanetSnapshot struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Position        shared.Position   `json:"position"`
	OrbitalDistance float64           `json:"orbital_distance"`
	Type            string            `json:"type"`
	Radius          float64           `json:"radius"`
	Mass            float64           `json:"mass"`
	Zone            string            `json:"zone"`
	Atmosphere      string            `json:"atmosphere"`
	Moons           []MoonSnapshot    `json:"moons,omitempty"`
	Stations        []StationSnapshot `json:"stations,omitempty"`
}

type MoonSnapshot struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Position        shared.Position `json:"position"`
	Radius          float64         `json:"radius"`
	Mass            float64         `json:"mass"`
	OrbitalDistance float64         `json:"orbital_distance"`
	ParentPlanetID  int             `json:"parent_planet_id"`
}

type BeltSnapshot struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Position    shared.Position `json:"position"`
	InnerRadius float64         `json:"inner_radius"`
	OuterRadius float64         `json:"outer_radius"`
	Fields      []FieldSnapshot `json:"fields,omitempty"`
}

type FieldSnapshot struct {
	ID        int                `json:"id"`
	Position  shared.Position    `json:"position"`
	Radius    float64            `json:"radius"`
	OreIDs    []int              `json:"ore_ids"`
	Asteroids []AsteroidSnapshot `json:"asteroids,omitempty"`
	Visited   bool               `json:"visited,omitempty"`
}

type AsteroidSnapshot struct {
	Name   string  `json:"name"`
	Volume float64 `json:"volume"`
	OreID  int     `json:"ore_id"`
}

type StationSnapshot struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Position    shared.Position `json:"position"`
	ParentKind  string          `json:"parent_kind"`
	ParentID    int             `json:"parent_id"`
	FuelTankCap float64         `json:"fuel_tank_cap"`
	FuelTank    float64         `json:"fuel_tank"`
	FuelPrice   float64         `json:"fuel_price"`
	Visited     bool            `json:"visited,omitempty"`
	Cargo       []CargoSnapshot `json:"cargo,omitempty"`
}

type CargoSnapshot struct {
	OreID     int     `json:"ore_id"`
	Quantity  int     `json:"quantity"`
	BuyPrice  float64 `json:"buy_price"`
	SellPrice float64 `json:"sell_price"`
}

// EncodeSystem flattens a system into its snapshot form.
func EncodeSystem(s *celestial.SolarSystem) SystemSnapshot {
	star := s.Star
	snap := StarSnapshot{
		ID:          star.ID(),
		Name:        star.Name(),
		Position:    star.Position(),
		Class:       string(star.Class()),
		Color:       star.Color(),
		Temperature: star.Temperature(),
		Luminosity:  star.Luminosity(),
		Mass:        star.Mass(),
		Radius:      star.Radius(),
		Age:         star.Age(),
		Stations:    encodeStations(star.Stations()),
	}
	for _, planet := range s.Planets() {
		snap.Planets = append(snap.Planets, encodePlanet(planet))
	}
	for _, belt := range s.Belts() {
		snap.Belts = append(snap.Belts, encodeBelt(belt))
	}
	return SystemSnapshot{Name: s.Name, Coordinates: s.Coordinates, Star: snap}
}

func encodePlanet(p *celestial.Planet) PlanetSnapshot {
	snap := PlanetSnapshot{
		ID:              p.ID(),
		Name:            p.Name(),
		Position:        p.Position(),
		OrbitalDistance: p.OrbitalDistance(),
		Type:            string(p.Type()),
		Radius:          p.Radius(),
		Mass:            p.Mass(),
		Zone:            string(p.TemperatureZone()),
		Atmosphere:      string(p.Atmosphere()),
		Stations:        encodeStations(p.Stations()),
	}
	for _, moon := range p.Moons() {
		snap.Moons = append(snap.Moons, MoonSnapshot{
			ID:              moon.ID(),
			Name:            moon.Name(),
			Position:        moon.Position(),
			Radius:          moon.Radius(),
			Mass:            moon.Mass(),
			OrbitalDistance: moon.OrbitalDistance(),
			ParentPlanetID:  moon.ParentPlanetID(),
		})
	}
	return snap
}

func encodeBelt(b *celestial.AsteroidBelt) BeltSnapshot {
	snap := BeltSnapshot{
		ID:          b.ID(),
		Name:        b.Name(),
		Position:    b.Position(),
		InnerRadius: b.InnerRadius(),
		OuterRadius: b.OuterRadius(),
	}
	for _, field := range b.Fields() {
		fs := FieldSnapshot{
			ID:       field.ID(),
			Position: field.Position(),
			Radius:   field.Radius(),
			Visited:  field.Visited,
		}
		for _, o := range field.Ores() {
			fs.OreIDs = append(fs.OreIDs, o.ID)
		}
		for _, a := range field.Asteroids() {
			fs.Asteroids = append(fs.Asteroids, AsteroidSnapshot{
				Name:   a.Name,
				Volume: a.Volume,
				OreID:  a.Ore.ID,
			})
		}
		snap.Fields = append(snap.Fields, fs)
	}
	return snap
}

func encodeStations(stations []*celestial.Station) []StationSnapshot {
	out := make([]StationSnapshot, 0, len(stations))
	for _, s := range stations {
		snap := StationSnapshot{
			ID:          s.ID(),
			Name:        s.Name(),
			Position:    s.Position(),
			ParentKind:  string(s.ParentKind()),
			ParentID:    s.ParentID(),
			FuelTankCap: s.FuelTankCap,
			FuelTank:    s.FuelTank,
			FuelPrice:   s.FuelPrice,
			Visited:     s.Visited,
		}
		for _, c := range s.Cargo() {
			snap.Cargo = append(snap.Cargo, CargoSnapshot{
				OreID:     c.Ore.ID,
				Quantity:  c.Quantity,
				BuyPrice:  c.BuyPrice,
				SellPrice: c.SellPrice,
			})
		}
		out = append(out, snap)
	}
	return out
}

// DecodeSystem rebuilds a system from its snapshot. Moons restore in a
// second pass once every planet exists, resolving parent links by id.
func DecodeSystem(snap SystemSnapshot, catalog []*ore.Ore) (*celestial.SolarSystem, error) {
	ss := snap.Star
	star := celestial.NewStar(ss.ID, ss.Name, ss.Position, celestial.StellarClass(ss.Class), ss.Color,
		ss.Temperature, ss.Luminosity, ss.Mass, ss.Radius, ss.Age)
	system := &celestial.SolarSystem{Name: snap.Name, Coordinates: snap.Coordinates, Star: star}

	// First pass: planets.
	planets := make(map[int]*celestial.Planet, len(ss.Planets))
	for _, ps := range ss.Planets {
		planet := celestial.NewPlanet(ps.ID, ps.Name, ps.Position, ps.OrbitalDistance,
			celestial.PlanetType(ps.Type), ps.Radius, ps.Mass,
			celestial.Zone(ps.Zone), celestial.Atmosphere(ps.Atmosphere),
			star.Class(), star.Age())
		planets[ps.ID] = planet
		star.AddChild(planet)
		for _, sts := range ps.Stations {
			station, err := decodeStation(sts, catalog)
			if err != nil {
				return nil, err
			}
			planet.AddStation(station)
		}
	}

	// Second pass: moons, now that parent ids resolve.
	for _, ps := range ss.Planets {
		parent := planets[ps.ID]
		for _, ms := range ps.Moons {
			moon := celestial.NewMoon(ms.ID, ms.Name, ms.Position, ms.Radius, ms.Mass,
				ms.ParentPlanetID, "", nil)
			moon.SetOrbitalDistance(ms.OrbitalDistance)
			if linked, ok := planets[ms.ParentPlanetID]; ok {
				moon.Relink(linked)
			}
			parent.AddChild(moon)
		}
	}

	for _, bs := range ss.Belts {
		belt := celestial.NewAsteroidBelt(bs.ID, bs.Name, bs.Position, bs.InnerRadius, bs.OuterRadius)
		for _, fs := range bs.Fields {
			ores := make([]*ore.Ore, 0, len(fs.OreIDs))
			for _, id := range fs.OreIDs {
				o, ok := ore.ByID(catalog, id)
				if !ok {
					return nil, fmt.Errorf("snapshot references unknown ore id %d", id)
				}
				ores = append(ores, o)
			}
			field := celestial.NewAsteroidField(fs.ID, fs.Position, fs.Radius, ores)
			field.Visited = fs.Visited
			for _, as := range fs.Asteroids {
				o, ok := ore.ByID(catalog, as.OreID)
				if !ok {
					return nil, fmt.Errorf("snapshot references unknown ore id %d", as.OreID)
				}
				field.AddAsteroid(&celestial.Asteroid{Name: as.Name, Volume: as.Volume, Ore: o})
			}
			belt.AddField(field)
		}
		star.AddChild(belt)
	}

	for _, sts := range ss.Stations {
		station, err := decodeStation(sts, catalog)
		if err != nil {
			return nil, err
		}
		star.AddStation(station)
	}

	return system, nil
}

func decodeStation(snap StationSnapshot, catalog []*ore.Ore) (*celestial.Station, error) {
	station := celestial.NewStation(snap.ID, snap.Name, snap.Position,
		celestial.BodyKind(snap.ParentKind), snap.ParentID)
	station.FuelTankCap = snap.FuelTankCap
	station.FuelTank = snap.FuelTank
	station.FuelPrice = snap.FuelPrice
	station.Visited = snap.Visited
	for _, c := range snap.Cargo {
		o, ok := ore.ByID(catalog, c.OreID)
		if !ok {
			return nil, fmt.Errorf("snapshot references unknown ore id %d", c.OreID)
		}
		station.AddCargo(&celestial.OreCargo{
			Ore:       o,
			Quantity:  c.Quantity,
			BuyPrice:  c.BuyPrice,
			SellPrice: c.SellPrice,
		})
	}
	return station, nil
}

// MarshalSystem renders a system snapshot as compact JSON for storage.
func MarshalSystem(s *celestial.SolarSystem) (string, error) {
	data, err := json.Marshal(EncodeSystem(s))
	if err != nil {
		return "", fmt.Errorf("failed to marshal system snapshot: %w", err)
	}
	return string(data), nil
}

// UnmarshalSystem decodes a stored JSON snapshot back into a system.
func UnmarshalSystem(data string, catalog []*ore.Ore) (*celestial.SolarSystem, error) {
	var snap SystemSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal system snapshot: %w", err)
	}
	return DecodeSystem(snap, catalog)
}
