package commodity

// builtinTable is the well-known commodity table occupying the low end of
// the built-in range (0x00000000..0x2FFFFFFF; 0x30000000.. is reserved for
// HSCode). Values are arbitrary but stable small integers: what matters is
// that they never collide and never stray into the short/hashed/HS
// sub-ranges.
var builtinTable = buildBuiltinTable()

func buildBuiltinTable() map[string]Code {
	names := []string{
		// Metals
		"gold", "silver", "platinum", "palladium", "copper", "aluminum",
		"iron", "steel", "zinc", "nickel", "lead", "tin", "titanium",
		// Energy carriers
		"oil", "crude", "gasoline", "diesel", "naturalgas", "propane",
		"ethanol", "coal", "electricity", "hydrogen", "uranium",
		// Agricultural / grains
		"wheat", "corn", "soybeans", "rice", "oats", "barley", "cotton",
		"coffee", "cocoa", "sugar", "orangejuice", "lumber",
		// Water and common fluids
		"water", "seawater", "milk", "oil_engine", "air",
		// Biological / medical
		"blood", "plasma", "glucose", "hemoglobin", "creatinine",
		// Gases
		"oxygen", "nitrogen", "helium", "argon", "co2", "methane",
		// Currency-adjacent / abstract
		"item", "unit", "piece", "each", "dozen", "gross", "ream",
		// Chemicals
		"ethylene", "propylene", "benzene", "ammonia", "chlorine",
		"sulfuric_acid", "sodium_chloride",
		// Construction
		"concrete", "sand", "gravel", "asphalt", "glass",
		// Textile fibers
		"wool", "silk", "polyester", "nylon",
	}

	table := make(map[string]Code, len(names)+len(packaging))
	for i, name := range names {
		table[name] = Code(i + 1)
	}
	base := Code(len(names) + 1)
	for i, name := range packaging {
		table[name] = base + Code(i)
	}
	return table
}

// packaging holds the reserved packaging-unit commodity names (bulk
// goods, containers) reserved alongside the named commodities in the
// built-in table.
var packaging = []string{
	"bulk", "can", "bottle", "box", "bag", "drum", "pallet", "crate",
	"carton", "tube", "roll", "sheet",
}
