// Package datasets registers the built-in Census 2011 datasets.
//
// Import it for its side effects:
//
//	import _ "github.com/JonMunkholm/census2011/internal/core/datasets"
package datasets

import "github.com/JonMunkholm/census2011/internal/core"

// ProvinceBC is the two-digit code of British Columbia.
const ProvinceBC = 59

// idColumn is the destination header of the geography ID in every dataset.
const idColumn = "UID"

// bcRanges admits the province itself and its city-level IDs (901 through 979).
var bcRanges = []core.IDRange{
	{Low: ProvinceBC, High: ProvinceBC},
	{Low: 901, High: 979},
}

// rangeGate restricts unscoped tables to British Columbia before running then.
func rangeGate(then core.Validator) core.Validator {
	return core.RangeGated{Ranges: bcRanges, Then: then}
}
