package datasets

import "github.com/JonMunkholm/census2011/internal/core"

func init() {
	registerIncome()
}

func registerIncome() {
	core.Register(core.Dataset{
		Key:             "income",
		Label:           "Individual and economic family income",
		Tiers:           core.CityTiers,
		HeaderRows:      1,
		GeographyColumn: "Geography",
		IDColumn:        idColumn,
		NameColumn:      "GEOGRAPHY",
		Sources: []core.Source{{
			Label: "input",
			Columns: []core.Column{
				{Name: "TTOTINCPOP", Source: "Total - Total income in 2010"},
				{Name: "TWTHOUTINC", Source: "Without income"},
				{Name: "TWTHINC", Source: "With income"},
				{Name: "TUNDR5000", Source: "Under $5,000"},
				{Name: "T5TO10000", Source: "$5,000 to $9,999"},
				{Name: "T10TO15000", Source: "$10,000 to $14,999"},
				{Name: "T15TO20000", Source: "$15,000 to $19,999"},
				{Name: "T20TO30000", Source: "$20,000 to $29,999"},
				{Name: "T30TO40000", Source: "$30,000 to $39,999"},
				{Name: "T40TO50000", Source: "$40,000 to $49,999"},
				{Name: "T50TO60000", Source: "$50,000 to $59,999"},
				{Name: "T60TO80000", Source: "$60,000 to $79,999"},
				{Name: "T80TO100000", Source: "$80,000 to $99,999"},
				{Name: "TOVER100", Source: "$100,000 and over"},
				{Name: "TMEDIAN", Source: "Median income $"},
				{Name: "TAVERAGE", Source: "Average income $"},
				{Name: "FTOTINCFAM", Source: "Total - Economic family total income in 2010"},
				{Name: "FUNDER5", Source: "Under $5,000"},
				{Name: "F5TO10000", Source: "$5,000 to $9,999"},
				{Name: "F10TO15000", Source: "$10,000 to $14,999"},
				{Name: "F15TO20000", Source: "$15,000 to $19,999"},
				{Name: "F20TO30000", Source: "$20,000 to $29,999"},
				{Name: "F30TO40000", Source: "$30,000 to $39,999"},
				{Name: "F40TO50000", Source: "$40,000 to $49,999"},
				{Name: "F50TO60000", Source: "$50,000 to $59,999"},
				{Name: "F60TO80000", Source: "$60,000 to $79,999"},
				{Name: "F80TO100000", Source: "$80,000 to $99,999"},
				{Name: "FOVER100", Source: "$100,000 and over"},
				{Name: "FMEDIAN", Source: "Median family income $"},
				{Name: "FAVERAGE", Source: "Average family income $"},
			},
		}},
		Scope:        core.ScopeAny,
		ProvinceCode: ProvinceBC,
		Validator:    rangeGate(core.NumericParseable{Index: 0}),
	})
}
