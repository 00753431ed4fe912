package galaxy

import "math"

// AllocateOrbit picks an orbital distance (AU) keeping the configured
// minimum separation from every orbit already in use. It tries each
// configured zone in order, then a fixed candidate ladder at a looser
// separation, and finally pushes past the outer edge. The result is never
// an error; crowded systems degrade to wide outer orbits.
func (c *Context) AllocateOrbit(used []float64) float64 {
	for _, zone := range c.cfg.OrbitZones {
		for i := 0; i < c.cfg.OrbitAttemptsPerZone; i++ {
			d := c.Float(zone)
			if orbitFree(d, used, c.cfg.OrbitMinSeparation) {
				return d
			}
		}
	}

	for _, d := range c.cfg.OrbitFallbackCandidates {
		if orbitFree(d, used, c.cfg.OrbitFallbackSeparation) {
			c.log.Warn("orbit allocation fell back to candidate ladder", "distance", d)
			c.obs.PlacementFellBack("orbit")
			return d
		}
	}

	d := 30.0 + float64(len(used))
	c.log.Warn("orbit allocation pushed past outer edge", "distance", d)
	c.obs.PlacementFellBack("orbit")
	return d
}

func orbitFree(d float64, used []float64, minSeparation float64) bool {
	for _, u := range used {
		if math.Abs(d-u) < minSeparation {
			return false
		}
	}
	return true
}
