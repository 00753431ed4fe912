package celestial

// StellarClass is a spectral category letter.
type StellarClass string

const (
	ClassO StellarClass = "O"
	ClassB StellarClass = "B"
	ClassA StellarClass = "A"
	ClassF StellarClass = "F"
	ClassG StellarClass = "G"
	ClassK StellarClass = "K"
	ClassM StellarClass = "M"
)

// Range is a closed [Min, Max] sampling interval.
type Range struct {
	Min float64 `mapstructure:"min" json:"min"`
	Max float64 `mapstructure:"max" json:"max"`
}

// StellarClassSpec describes one spectral category: how rare it is and the
// physical ranges its stars are sampled from. Radii are in solar radii and
// scaled down at construction for game distances.
type StellarClassSpec struct {
	Class       StellarClass `mapstructure:"class" json:"class"`
	Weight      float64      `mapstructure:"weight" json:"weight"` // rarity weight
	Temperature Range        `mapstructure:"temperature" json:"temperature"`
	Luminosity  Range        `mapstructure:"luminosity" json:"luminosity"`
	Mass        Range        `mapstructure:"mass" json:"mass"`
	Radius      Range        `mapstructure:"radius" json:"radius"`
	Color       string       `mapstructure:"color" json:"color"`
}

// DefaultStellarCatalog returns the seven spectral classes, ordered hottest
// to coolest. Weights follow observed main-sequence abundance, so the draw
// overwhelmingly favors red dwarfs.
func DefaultStellarCatalog() []StellarClassSpec {
	return []StellarClassSpec{
		{Class: ClassO, Weight: 0.01, Temperature: Range{30000, 50000}, Luminosity: Range{30000, 100000}, Mass: Range{16.0, 90.0}, Radius: Range{6.6, 15.0}, Color: "blue"},
		{Class: ClassB, Weight: 0.1, Temperature: Range{10000, 30000}, Luminosity: Range{25, 30000}, Mass: Range{2.1, 16.0}, Radius: Range{1.8, 6.6}, Color: "blue-white"},
		{Class: ClassA, Weight: 0.6, Temperature: Range{7500, 10000}, Luminosity: Range{5, 25}, Mass: Range{1.4, 2.1}, Radius: Range{1.4, 1.8}, Color: "white"},
		{Class: ClassF, Weight: 3.0, Temperature: Range{6000, 7500}, Luminosity: Range{1.5, 5}, Mass: Range{1.04, 1.4}, Radius: Range{1.15, 1.4}, Color: "yellow-white"},
		{Class: ClassG, Weight: 7.6, Temperature: Range{5200, 6000}, Luminosity: Range{0.6, 1.5}, Mass: Range{0.8, 1.04}, Radius: Range{0.96, 1.15}, Color: "yellow"},
		{Class: ClassK, Weight: 12.1, Temperature: Range{3700, 5200}, Luminosity: Range{0.08, 0.6}, Mass: Range{0.45, 0.8}, Radius: Range{0.7, 0.96}, Color: "orange"},
		{Class: ClassM, Weight: 76.5, Temperature: Range{2400, 3700}, Luminosity: Range{0.01, 0.08}, Mass: Range{0.08, 0.45}, Radius: Range{0.1, 0.7}, Color: "red"},
	}
}
