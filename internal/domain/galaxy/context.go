package galaxy

import (
	"encoding/binary"
	"hash/fnv"
	"log/slog"
	"math"
	"math/rand/v2"
)

// Context is the single source of randomness and identity for one
// generation run. Builders sharing a Context draw from one RNG stream in a
// fixed order, so a given seed and config always produce the same tree.
type Context struct {
	rng *rand.Rand
	cfg Config
	log *slog.Logger
	obs Observer

	starID    int
	planetID  int
	moonID    int
	beltID    int
	fieldID   int
	stationID int
}

// NewContext builds a generation context from a seed. A nil logger or
// observer is replaced with a no-op.
func NewContext(seed int64, cfg Config, logger *slog.Logger, obs Observer) *Context {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if obs == nil {
		obs = NopObserver{}
	}
	return &Context{
		rng: rand.New(rand.NewPCG(seedWord(seed, "galaxy/hi"), seedWord(seed, "galaxy/lo"))),
		cfg: cfg,
		log: logger.With("component", "galaxy"),
		obs: obs,
	}
}

// seedWord stretches one int64 seed into independent PCG state words.
func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(salt))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	h.Write(buf[:])
	return h.Sum64()
}

func (c *Context) Config() Config        { return c.cfg }
func (c *Context) Logger() *slog.Logger  { return c.log }
func (c *Context) Rand() *rand.Rand      { return c.rng }

// Uniform draws an unrounded float in [min, max).
func (c *Context) Uniform(r Range) float64 {
	return c.rng.Float64()*(r.Max-r.Min) + r.Min
}

// Float draws a float in [min, max) rounded to two decimals. Coordinates,
// radii and prices all carry two decimals on the wire.
func (c *Context) Float(r Range) float64 {
	return math.Round(c.Uniform(r)*100) / 100
}

// IntBetween draws an int in the closed interval [min, max].
func (c *Context) IntBetween(r IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + c.rng.IntN(r.Max-r.Min+1)
}

// Angle draws a direction in radians.
func (c *Context) Angle() float64 {
	return c.rng.Float64() * 2 * math.Pi
}

// Chance returns true with probability p.
func (c *Context) Chance(p float64) bool {
	return c.rng.Float64() < p
}

// ID counters are process-unique per kind within one Context.

func (c *Context) NextStarID() int    { id := c.starID; c.starID++; return id }
func (c *Context) NextPlanetID() int  { id := c.planetID; c.planetID++; return id }
func (c *Context) NextMoonID() int    { id := c.moonID; c.moonID++; return id }
func (c *Context) NextBeltID() int    { id := c.beltID; c.beltID++; return id }
func (c *Context) NextFieldID() int   { id := c.fieldID; c.fieldID++; return id }
func (c *Context) NextStationID() int { id := c.stationID; c.stationID++; return id }
