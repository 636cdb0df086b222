// Package units is the functional facade: a process-wide default
// dictionary, commodity registry, parser, and serializer wired together,
// exposed as package-level functions the way currency's package-level
// DefaultParseOpts stands in for an explicit options value the caller
// doesn't want to thread through every call.
package units

import (
	"io"
	"sync/atomic"

	"github.com/vantara-labs/units/commodity"
	"github.com/vantara-labs/units/convert"
	"github.com/vantara-labs/units/dictionary"
	"github.com/vantara-labs/units/dictfile"
	"github.com/vantara-labs/units/matchflags"
	"github.com/vantara-labs/units/measurement"
	"github.com/vantara-labs/units/parse"
	"github.com/vantara-labs/units/serialize"
	"github.com/vantara-labs/units/unit"
)

type env struct {
	dict        *dictionary.Dictionary
	commodities *commodity.Registry
	parser      *parse.Parser
	serializer  *serialize.Serializer
	flags       atomic.Uint64
}

func newEnv() *env {
	dict := dictionary.New()
	commodities := commodity.NewRegistry()
	return &env{
		dict:        dict,
		commodities: commodities,
		parser:      parse.New(dict, commodities),
		serializer:  serialize.New(dict, commodities),
	}
}

// std is the process-wide default environment every package-level
// function in this file operates on.
var std = newEnv()

func (e *env) effectiveFlags(flags matchflags.Flags) matchflags.Flags {
	return matchflags.Flags(e.flags.Load()) | flags
}

// Convert implements convert(value, from_unit, to_unit) -> scalar.
func Convert(value float64, from, to unit.Precise) float64 {
	return convert.Convert(value, from, to)
}

// ConvertWithBase implements convert(value, from_unit, to_unit,
// base_power, base_voltage) -> scalar.
func ConvertWithBase(value float64, from, to unit.Precise, basePower, baseVoltage float64) float64 {
	return convert.ConvertWithBase(value, from, to, basePower, baseVoltage)
}

// UnitFromString implements unit_from_string(text, flags) -> precise_unit.
func UnitFromString(text string, flags matchflags.Flags) (unit.Precise, error) {
	return std.parser.FromString(text, std.effectiveFlags(flags))
}

// MeasurementFromString implements measurement_from_string(text, flags)
// -> precise_measurement.
func MeasurementFromString(text string, flags matchflags.Flags) (measurement.Measurement, error) {
	return measurement.FromString(std.parser, text, std.effectiveFlags(flags))
}

// UncertainMeasurementFromString implements
// uncertain_measurement_from_string(text, flags) -> uncertain_measurement.
func UncertainMeasurementFromString(text string, flags matchflags.Flags) (measurement.UncertainMeasurement, error) {
	return measurement.UncertainFromString(std.parser, text, std.effectiveFlags(flags))
}

// ToString implements to_string(unit, flags) -> text.
func ToString(u unit.Precise, flags matchflags.Flags) string {
	return std.serializer.ToString(u, std.effectiveFlags(flags))
}

// MeasurementToString implements to_string(measurement, flags) -> text:
// the locale-formatted scalar followed by the serialized unit.
func MeasurementToString(m measurement.Measurement, flags matchflags.Flags) string {
	unitText := std.serializer.ToString(m.Unit, std.effectiveFlags(flags))
	if unitText == "1" || unitText == "" {
		return m.String()
	}
	return m.String() + " " + unitText
}

// quantityDefaults backs DefaultUnit
// -> precise_unit): the base SI unit (plus radian/currency/count) for
// each named quantity.
var quantityDefaults = map[string]string{
	"length":      "m",
	"mass":        "kg",
	"time":        "s",
	"current":     "A",
	"temperature": "K",
	"amount":      "mol",
	"luminosity":  "cd",
	"angle":       "rad",
	"count":       "each",
	"currency":    "USD",
}

// DefaultUnit implements default_unit(quantity_name) -> precise_unit,
// e.g. "mass" -> kg, "length" -> m.
func DefaultUnit(quantityName string) (unit.Precise, bool) {
	name, ok := quantityDefaults[quantityName]
	if !ok {
		return unit.Precise{}, false
	}
	return std.dict.ByName(name)
}

// Root implements root(unit, n) -> precise_unit.
func Root(u unit.Precise, n int32) unit.Precise {
	return unit.Root(u, n)
}

// Pow implements pow(unit, n) -> precise_unit.
func Pow(u unit.Precise, n int32) unit.Precise {
	return unit.Pow(u, n)
}

// AddUserDefinedUnit implements add_user_defined_unit(name, unit),
// generalized with the direction dictfile's file format also exposes
//.
func AddUserDefinedUnit(name string, u unit.Precise, dir dictionary.Direction) error {
	return std.dict.AddUserDefinedUnit(name, u, dir)
}

// RemoveUserDefinedUnit implements remove_user_defined_unit(name).
func RemoveUserDefinedUnit(name string) {
	std.dict.RemoveUserDefinedUnit(name)
}

// ClearUserDefinedUnits implements clear_user_defined_units().
func ClearUserDefinedUnits() {
	std.dict.ClearUserDefinedUnits()
}

// AddCustomCommodity implements add_custom_commodity(name, code). The
// registry interns commodity codes from their name deterministically
// (short-alphabet packing or an FNV hash) rather than accepting a
// caller-supplied code, so this is a thin wrapper over GetCommodity that
// both registers and returns the generated code.
func AddCustomCommodity(name string) (commodity.Code, error) {
	return std.commodities.Get(name)
}

// GetCommodity implements get_commodity(name) -> code.
func GetCommodity(name string) (commodity.Code, error) {
	return std.commodities.Get(name)
}

// GetCommodityName implements get_commodity_name(code) -> text.
func GetCommodityName(code commodity.Code) (string, bool) {
	return std.commodities.GetName(code)
}

// SetUnitsDomain implements set_units_domain(tag) -> previous_tag.
func SetUnitsDomain(tag dictionary.Domain) dictionary.Domain {
	return std.dict.SetDomain(tag)
}

// SetDefaultFlags implements set_default_flags(flags) -> previous_flags.
func SetDefaultFlags(flags matchflags.Flags) matchflags.Flags {
	prev := std.flags.Swap(uint64(flags))
	return matchflags.Flags(prev)
}

// EnableUserDefinedUnits / DisableUserDefinedUnits implement
// enable_user_defined_units() / disable_user_defined_units().
func EnableUserDefinedUnits()  { std.dict.EnableUserDefinedUnits() }
func DisableUserDefinedUnits() { std.dict.DisableUserDefinedUnits() }

// EnableCustomCommodities / DisableCustomCommodities implement
// enable_custom_commodities() / disable_custom_commodities().
func EnableCustomCommodities()  { std.commodities.EnableCustomCommodities() }
func DisableCustomCommodities() { std.commodities.DisableCustomCommodities() }

// LoadDefinedUnitsFile implements the convenience
// defined_units_from_file helper against the default environment.
func LoadDefinedUnitsFile(r io.Reader) (dictfile.Result, error) {
	return dictfile.Load(r, std.parser, std.dict)
}
