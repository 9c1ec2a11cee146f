package aci

// LoadCombination represents a strength-design load combination
// Based on ACI 318-19 Section 5.3.1 - Required Strength
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// ACI 318-19 Table 5.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Live:        1.0,
		Roof:        1.6,
		Rain:        1.6,
		Wind:        0.5,
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Roof:        0.5,
		Rain:        0.5,
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// GravityCombinations for common beam sizing scenarios
// These are the most frequently used combinations for gravity loads
var GravityCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// ServiceLoads holds unfactored uniform line loads from different load types
type ServiceLoads struct {
	Dead       float64 // Uniform dead load (kN/m)
	Live       float64 // Uniform live load (kN/m)
	Roof       float64 // Uniform roof live load (kN/m)
	Wind       float64 // Uniform wind load (kN/m)
	Earthquake float64 // Uniform earthquake load (kN/m)
	Rain       float64 // Uniform rain load (kN/m)
}

// Zero reports whether no service load was provided at all.
func (s ServiceLoads) Zero() bool {
	return s.Dead == 0 && s.Live == 0 && s.Roof == 0 &&
		s.Wind == 0 && s.Earthquake == 0 && s.Rain == 0
}

// Factored calculates the factored uniform load wu (kN/m) for a given
// load combination.
func (lc LoadCombination) Factored(loads ServiceLoads) float64 {
	return lc.Dead*loads.Dead +
		lc.Live*loads.Live +
		lc.Roof*loads.Roof +
		lc.Wind*loads.Wind +
		lc.Earthquake*loads.Earthquake +
		lc.Rain*loads.Rain
}

// Governing finds the maximum factored uniform load from all combinations
func Governing(loads ServiceLoads, combinations []LoadCombination) (float64, LoadCombination) {
	var maxLoad float64
	var governingCombo LoadCombination

	for _, combo := range combinations {
		wu := combo.Factored(loads)
		if wu > maxLoad {
			maxLoad = wu
			governingCombo = combo
		}
	}

	return maxLoad, governingCombo
}
