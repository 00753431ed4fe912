package ore

// MaterialCategory groups refined minerals by the temperature band they
// condense at. Asteroid belt ore zoning weighs these categories against the
// temperature zones of nearby planets.
type MaterialCategory string

const (
	HighTemp MaterialCategory = "high_temp" // rock, metals
	MidTemp  MaterialCategory = "mid_temp"
	LowTemp  MaterialCategory = "low_temp" // ices, some organics
)

// Categories lists all material categories in a fixed order.
func Categories() []MaterialCategory {
	return []MaterialCategory{HighTemp, MidTemp, LowTemp}
}

// Mineral is a refined product of ore processing.
type Mineral struct {
	ID        int
	Name      string
	BaseValue float64 // credits per unit
	Volume    float64 // m³ per unit
	Category  MaterialCategory
}

// Minerals is the refined-mineral table keyed by id.
var Minerals = map[int]Mineral{
	0:  {ID: 0, Name: "Iron", BaseValue: 75.0, Volume: 0.2, Category: HighTemp},
	1:  {ID: 1, Name: "Carbon", BaseValue: 45.0, Volume: 0.1, Category: LowTemp},
	2:  {ID: 2, Name: "Silicon", BaseValue: 90.0, Volume: 0.15, Category: HighTemp},
	3:  {ID: 3, Name: "Copper", BaseValue: 110.0, Volume: 0.25, Category: MidTemp},
	4:  {ID: 4, Name: "Zinc", BaseValue: 85.0, Volume: 0.2, Category: MidTemp},
	5:  {ID: 5, Name: "Aluminum", BaseValue: 95.0, Volume: 0.18, Category: HighTemp},
	6:  {ID: 6, Name: "Titanium", BaseValue: 200.0, Volume: 0.3, Category: HighTemp},
	7:  {ID: 7, Name: "Nickel", BaseValue: 150.0, Volume: 0.22, Category: HighTemp},
	8:  {ID: 8, Name: "Neodymium", BaseValue: 300.0, Volume: 0.25, Category: HighTemp},
	9:  {ID: 9, Name: "Gold", BaseValue: 500.0, Volume: 0.1, Category: HighTemp},
	10: {ID: 10, Name: "Rare Earth Elements", BaseValue: 450.0, Volume: 0.15, Category: HighTemp},
	11: {ID: 11, Name: "Exotic Materials", BaseValue: 1200.0, Volume: 0.5, Category: HighTemp},
}
