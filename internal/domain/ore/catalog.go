package ore

// DefaultCatalog returns the standard nine-ore catalog. Yield tables drive the
// belt zoning logic: refractory ores cluster in hot inner belts, volatile-rich
// ores beyond the frost line.
func DefaultCatalog() []*Ore {
	return []*Ore{
		{ID: 0, Name: "Pyrogen", BaseValue: 29.0, Volume: 0.3, Yield: []MineralYield{{MineralID: 0, Amount: 0.4}, {MineralID: 2, Amount: 0.2}}},
		{ID: 1, Name: "Ascorbon", BaseValue: 16.0, Volume: 0.15, Yield: []MineralYield{{MineralID: 1, Amount: 0.5}}},
		{ID: 2, Name: "Angion", BaseValue: 55.0, Volume: 0.35, Yield: []MineralYield{{MineralID: 3, Amount: 0.3}, {MineralID: 4, Amount: 0.2}}},
		{ID: 3, Name: "Varite", BaseValue: 18.0, Volume: 0.1, Yield: []MineralYield{{MineralID: 4, Amount: 0.3}, {MineralID: 5, Amount: 0.1}}},
		{ID: 4, Name: "Oxynite", BaseValue: 3500.0, Volume: 16.0, Yield: []MineralYield{{MineralID: 1, Amount: 0.4}, {MineralID: 11, Amount: 0.1}}},
		{ID: 5, Name: "Cyclon", BaseValue: 600.0, Volume: 2.0, Yield: []MineralYield{{MineralID: 6, Amount: 0.3}}},
		{ID: 6, Name: "Heron", BaseValue: 1200.0, Volume: 3.0, Yield: []MineralYield{{MineralID: 8, Amount: 0.25}, {MineralID: 10, Amount: 0.1}}},
		{ID: 7, Name: "Jonnite", BaseValue: 7250.0, Volume: 16.0, Yield: []MineralYield{{MineralID: 9, Amount: 0.2}, {MineralID: 11, Amount: 0.15}}},
		{ID: 8, Name: "Magneton", BaseValue: 580.0, Volume: 1.2, Yield: []MineralYield{{MineralID: 7, Amount: 0.35}, {MineralID: 0, Amount: 0.1}}},
	}
}

// ByName finds an ore in a catalog by case-sensitive name.
func ByName(catalog []*Ore, name string) (*Ore, bool) {
	for _, o := range catalog {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// ByID finds an ore in a catalog by id.
func ByID(catalog []*Ore, id int) (*Ore, bool) {
	for _, o := range catalog {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}
