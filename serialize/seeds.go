package serialize

// probeSeeds is step 8's list of well-known units tried against an
// otherwise-unresolved unit by multiplication and division. The
// list is restricted to names builtinTable actually carries, so every
// probe can resolve.
var probeSeeds = []string{
	"s", "m", "kg", "mol", "rad", "cd", "A", "K",
	"min", "h", "day", "L", "eV", "mach",
	"N", "J", "W", "V", "ohm", "Hz", "Pa", "C", "F", "T", "H", "Wb", "lx",
	"ft", "in", "yd", "mi", "lb", "oz",
	"gal", "qt", "pt", "bit", "byte", "USD", "each",
}
