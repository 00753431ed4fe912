package ore

import "fmt"

// MineralYield names how much of a refined mineral one unit of ore produces.
type MineralYield struct {
	MineralID int
	Amount    float64
}

// Ore is a minable raw material. Ores are immutable catalog entries; the
// depletable state lives on the asteroids that carry them.
type Ore struct {
	ID        int
	Name      string
	BaseValue float64 // credits per unit
	Volume    float64 // m³ per unit
	Yield     []MineralYield
}

// Category buckets the ore by the material category with the largest
// mineral-yield contribution. Ores without yield data default to MidTemp.
func (o *Ore) Category() MaterialCategory {
	if len(o.Yield) == 0 {
		return MidTemp
	}

	weights := map[MaterialCategory]float64{}
	total := 0.0
	for _, y := range o.Yield {
		mineral, ok := Minerals[y.MineralID]
		if !ok {
			continue
		}
		weights[mineral.Category] += y.Amount
		total += y.Amount
	}
	if total <= 0 {
		return MidTemp
	}

	best := MidTemp
	bestWeight := 0.0
	for _, category := range Categories() {
		if weights[category] > bestWeight {
			bestWeight = weights[category]
			best = category
		}
	}
	return best
}

func (o *Ore) String() string {
	return fmt.Sprintf("%s: %.1f credits, %.2f m³ per unit", o.Name, o.BaseValue, o.Volume)
}
