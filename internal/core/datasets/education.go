package datasets

import "github.com/JonMunkholm/census2011/internal/core"

func init() {
	registerEducation()
}

func registerEducation() {
	core.Register(core.Dataset{
		Key:             "education",
		Label:           "Highest certificate, diploma or degree by age",
		Tiers:           core.CityTiers,
		HeaderRows:      2,
		HeaderJoiner:    core.DefaultHeaderJoiner,
		GeographyColumn: ".Geography",
		IDColumn:        idColumn,
		NameColumn:      "GEOGRAPHY",
		Sources: []core.Source{{
			Label: "input",
			Columns: []core.Column{
				{Name: "15_24TOTAL", Source: "15 to 24 years.Total - Highest certificate, diploma or degree"},
				{Name: "15_24NO", Source: "15 to 24 years.No certificate, diploma or degree"},
				{Name: "15_24HIGHS", Source: "15 to 24 years.High school diploma or equivalent"},
				{Name: "15_24TRADE", Source: "15 to 24 years.Apprenticeship or trades certificate or diploma"},
				{Name: "15_24CLLGE", Source: "15 to 24 years.College, CEGEP or other non-university certificate or diploma"},
				{Name: "15_24SUB", Source: "15 to 24 years.University certificate or diploma below bachelor level"},
				{Name: "15_24FULL", Source: "15 to 24 years.University certificate, diploma or degree at bachelor level or above"},
				{Name: "15_24BACH", Source: "15 to 24 years.Bachelor's degree"},
				{Name: "15_24ABOVE", Source: "15 to 24 years.University certificate, diploma or degree above bachelor level"},
				{Name: "25_54TOTAL", Source: "25 to 54 years.Total - Highest certificate, diploma or degree"},
				{Name: "25_54NO", Source: "25 to 54 years.No certificate, diploma or degree"},
				{Name: "25_54HIGHS", Source: "25 to 54 years.High school diploma or equivalent"},
				{Name: "25_54TRADE", Source: "25 to 54 years.Apprenticeship or trades certificate or diploma"},
				{Name: "25_54CLLGE", Source: "25 to 54 years.College, CEGEP or other non-university certificate or diploma"},
				{Name: "25_54SUB", Source: "25 to 54 years.University certificate or diploma below bachelor level"},
				{Name: "25_54FULL", Source: "25 to 54 years.University certificate, diploma or degree at bachelor level or above"},
				{Name: "25_54BACH", Source: "25 to 54 years.Bachelor's degree"},
				{Name: "25_54ABOVE", Source: "25 to 54 years.University certificate, diploma or degree above bachelor level"},
				{Name: "55_64TOTAL", Source: "55 to 64 years.Total - Highest certificate, diploma or degree"},
				{Name: "55_64NO", Source: "55 to 64 years.No certificate, diploma or degree"},
				{Name: "55_64HIGHS", Source: "55 to 64 years.High school diploma or equivalent"},
				{Name: "55_64TRADE", Source: "55 to 64 years.Apprenticeship or trades certificate or diploma"},
				{Name: "55_64CLLGE", Source: "55 to 64 years.College, CEGEP or other non-university certificate or diploma"},
				{Name: "55_64SUB", Source: "55 to 64 years.University certificate or diploma below bachelor level"},
				{Name: "55_64FULL", Source: "55 to 64 years.University certificate, diploma or degree at bachelor level or above"},
				{Name: "55_64BACH", Source: "55 to 64 years.Bachelor's degree"},
				{Name: "55_64ABOVE", Source: "55 to 64 years.University certificate, diploma or degree above bachelor level"},
				{Name: "OVR65TOTAL", Source: "65 years and over.Total - Highest certificate, diploma or degree"},
				{Name: "OVR65NO", Source: "65 years and over.No certificate, diploma or degree"},
				{Name: "OVR65HIGHS", Source: "65 years and over.High school diploma or equivalent"},
				{Name: "OVR65TRADE", Source: "65 years and over.Apprenticeship or trades certificate or diploma"},
				{Name: "OVR65CLLGE", Source: "65 years and over.College, CEGEP or other non-university certificate or diploma"},
				{Name: "OVR65SUB", Source: "65 years and over.University certificate or diploma below bachelor level"},
				{Name: "OVR65FULL", Source: "65 years and over.University certificate, diploma or degree at bachelor level or above"},
				{Name: "OVR65BACH", Source: "65 years and over.Bachelor's degree"},
				{Name: "OVR65ABOVE", Source: "65 years and over.University certificate, diploma or degree above bachelor level"},
			},
		}},
		Scope:        core.ScopeAny,
		ProvinceCode: ProvinceBC,
		Validator:    rangeGate(core.NumericParseable{Index: 0}),
	})
}
