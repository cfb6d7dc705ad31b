package surface

// Attribute names used by the coordinator's dependency graph.
const (
	AttrIndices       = "indices"
	AttrPositions     = "positions"
	AttrColors        = "colors"
	AttrPickingColors = "pickingColors"
)

// Accessor names an attribute can depend on.
const (
	accGetPosition = "getPosition"
	accGetColor    = "getColor"
	accGetXScale   = "getXScale"
	accGetYScale   = "getYScale"
	accGetZScale   = "getZScale"
)

// attribute is one node of the dependency graph: the accessors it reads
// and the upstream attributes whose output it consumes.
type attribute struct {
	name      string
	accessors []string
	consumes  []string
}

// attributeGraph lists the four attributes in topological order, so a
// single forward pass propagates dirtiness from producers to consumers.
var attributeGraph = []attribute{
	{name: AttrIndices},
	{name: AttrPositions, accessors: []string{accGetPosition, accGetXScale, accGetYScale, accGetZScale}},
	{name: AttrColors, accessors: []string{accGetColor}, consumes: []string{AttrPositions}},
	{name: AttrPickingColors},
}

// Params holds the pipeline defaults, used when the caller leaves an
// accessor unset.
type Params struct {
	// DefaultColor is used when no color function is supplied.
	DefaultColor [4]uint8

	// DefaultScale is used for any axis without a scale factory.
	DefaultScale ScaleFactory

	// ExcludeInvalidExtent drops sanitized (zeroed) invalid samples from
	// the per-axis extent instead of folding them in. Off by default to
	// keep the historical scale domains.
	ExcludeInvalidExtent bool
}

// DefaultParams returns the documented defaults: opaque black, identity
// scales, invalid samples folded into the extent.
func DefaultParams() Params {
	return Params{
		DefaultColor: [4]uint8{0, 0, 0, 255},
		DefaultScale: Identity,
	}
}

// ScaleSet bundles the three per-axis scales built by the latest
// positions pass.
type ScaleSet struct {
	X Scale
	Y Scale
	Z Scale
}

// Buffers holds the cached attribute buffers in the layout the renderer
// consumes. The coordinator owns them exclusively; they are replaced, not
// patched, on recomputation.
type Buffers struct {
	Indices       []uint32  // triangle list, (u-1)*(v-1)*6 entries
	Positions     []float32 // 4 per vertex: x, z, y, validity
	Colors        []uint8   // RGBA, 4 per vertex
	PickingColors []uint8   // RGB, 3 per vertex
	IndexCount    int       // vertex indices to draw
}

// Coordinator recomputes the four surface attributes when the grid
// dimensions or accessor functions change, and caches the buffers in
// between. A dimension change invalidates everything; an accessor change
// invalidates only the attributes whose declared dependencies intersect
// it, plus their transitive consumers. Recomputation always covers the
// whole grid.
//
// Not safe for concurrent use; the host drives it from a single thread.
type Coordinator struct {
	params Params

	uCount int
	vCount int

	getPosition PositionFunc
	getColor    ColorFunc
	xScale      ScaleFactory
	yScale      ScaleFactory
	zScale      ScaleFactory
	onUpdate    func(ScaleSet)

	buffers Buffers
	scales  ScaleSet
	sample  *SampleResult

	changed  map[string]bool
	allDirty bool
}

// NewCoordinator creates a coordinator with the given defaults. Grid
// dimensions and accessors are supplied through the setters; the first
// Update after SetGrid computes everything.
func NewCoordinator(params Params) *Coordinator {
	if params.DefaultScale == nil {
		params.DefaultScale = Identity
	}
	return &Coordinator{
		params:  params,
		changed: make(map[string]bool),
	}
}

// SetGrid sets the grid resolution. Dimensions must be >= 2; smaller
// values leave the buffers empty. Changing either dimension marks every
// attribute dirty.
func (c *Coordinator) SetGrid(uCount, vCount int) {
	if uCount == c.uCount && vCount == c.vCount {
		return
	}
	c.uCount = uCount
	c.vCount = vCount
	c.allDirty = true
}

// SetPositionFunc replaces the position accessor.
func (c *Coordinator) SetPositionFunc(f PositionFunc) {
	c.getPosition = f
	c.changed[accGetPosition] = true
}

// SetColorFunc replaces the color accessor.
func (c *Coordinator) SetColorFunc(f ColorFunc) {
	c.getColor = f
	c.changed[accGetColor] = true
}

// SetScaleFactories replaces the per-axis scale factories. Nil entries
// fall back to the configured default.
func (c *Coordinator) SetScaleFactories(x, y, z ScaleFactory) {
	c.xScale = x
	c.yScale = y
	c.zScale = z
	c.changed[accGetXScale] = true
	c.changed[accGetYScale] = true
	c.changed[accGetZScale] = true
}

// SetOnUpdate registers a callback invoked once per positions
// recomputation with the freshly built scales. Registering it does not
// invalidate anything.
func (c *Coordinator) SetOnUpdate(f func(ScaleSet)) {
	c.onUpdate = f
}

// Buffers returns the cached attribute buffers. The coordinator retains
// ownership; the contents are valid until the next Update.
func (c *Coordinator) Buffers() *Buffers {
	return &c.buffers
}

// Scales returns the per-axis scales from the latest positions pass.
func (c *Coordinator) Scales() ScaleSet {
	return c.scales
}

// Extents returns the raw sampled extents from the latest positions pass.
func (c *Coordinator) Extents() (x, y, z Extent) {
	if c.sample == nil {
		return Extent{}, Extent{}, Extent{}
	}
	return c.sample.XExtent, c.sample.YExtent, c.sample.ZExtent
}

// GridSize returns the current grid resolution.
func (c *Coordinator) GridSize() (uCount, vCount int) {
	return c.uCount, c.vCount
}

// Update recomputes every dirty attribute in dependency order and clears
// the dirty state. It returns the names of the attributes that were
// recomputed. With dimensions below 2 all buffers are emptied.
func (c *Coordinator) Update() []string {
	dirty := make(map[string]bool, len(attributeGraph))
	for _, a := range attributeGraph {
		d := c.allDirty
		if !d {
			for _, acc := range a.accessors {
				if c.changed[acc] {
					d = true
					break
				}
			}
		}
		if !d {
			for _, up := range a.consumes {
				if dirty[up] {
					d = true
					break
				}
			}
		}
		if d {
			dirty[a.name] = true
		}
	}

	var recomputed []string
	for _, a := range attributeGraph {
		if !dirty[a.name] {
			continue
		}
		c.compute(a.name)
		recomputed = append(recomputed, a.name)
	}

	c.allDirty = false
	clear(c.changed)
	return recomputed
}

func (c *Coordinator) compute(name string) {
	degenerate := c.uCount < 2 || c.vCount < 2

	switch name {
	case AttrIndices:
		c.buffers.Indices = GenerateIndices(c.uCount, c.vCount)
		c.buffers.IndexCount = len(c.buffers.Indices)

	case AttrPositions:
		if degenerate {
			c.buffers.Positions = nil
			c.sample = nil
			c.scales = ScaleSet{}
			return
		}
		getPosition := c.getPosition
		if getPosition == nil {
			getPosition = func(u, v float64) (float64, float64, float64) { return 0, 0, 0 }
		}
		res := SamplePositions(getPosition, c.uCount, c.vCount,
			c.factory(c.xScale), c.factory(c.yScale), c.factory(c.zScale),
			c.params.ExcludeInvalidExtent)
		c.sample = res
		c.buffers.Positions = res.Positions
		c.scales = ScaleSet{X: res.XScale, Y: res.YScale, Z: res.ZScale}
		if c.onUpdate != nil {
			c.onUpdate(c.scales)
		}

	case AttrColors:
		if degenerate {
			c.buffers.Colors = nil
			return
		}
		getColor := c.getColor
		if getColor == nil {
			dc := c.params.DefaultColor
			getColor = func(x, y, z float64) (float64, float64, float64, float64) {
				return float64(dc[0]), float64(dc[1]), float64(dc[2]), float64(dc[3])
			}
		}
		c.buffers.Colors = ComputeColors(getColor, c.buffers.Positions)

	case AttrPickingColors:
		if degenerate {
			c.buffers.PickingColors = nil
			return
		}
		c.buffers.PickingColors = BuildPickingColors(c.uCount, c.vCount)
	}
}

func (c *Coordinator) factory(f ScaleFactory) ScaleFactory {
	if f == nil {
		return c.params.DefaultScale
	}
	return f
}
