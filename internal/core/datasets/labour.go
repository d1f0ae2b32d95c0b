package datasets

import "github.com/JonMunkholm/census2011/internal/core"

func init() {
	registerLabour()
}

func registerLabour() {
	core.Register(core.Dataset{
		Key:             "labour",
		Label:           "Labour force status and mode of transportation",
		Tiers:           core.CityTiers,
		HeaderRows:      1,
		GeographyColumn: "Geography",
		IDColumn:        idColumn,
		NameColumn:      "GEOGRAPHY",
		Sources: []core.Source{{
			Label: "input",
			Columns: []core.Column{
				{Name: "TLABOURF", Source: "Total - Labour force status"},
				{Name: "INLABOURF", Source: "In the labour force"},
				{Name: "EMPLOYED", Source: "Employed"},
				{Name: "UNEMPLOYED", Source: "Unemployed"},
				{Name: "NOTINLFRCE", Source: "Not in the labour force"},
				{Name: "PARTICRATE", Source: "Participation rate"},
				{Name: "EMPRATE", Source: "Employment rate"},
				{Name: "UNEMPRATE", Source: "Unemployment rate"},
				{Name: "TEMPBYMODE", Source: "Total - Mode of transportation"},
				{Name: "DRIVER", Source: "Car, truck or van as a driver"},
				{Name: "PASSENGER", Source: "Car, truck or van as a passenger"},
				{Name: "TRANSIT", Source: "Public transit"},
				{Name: "WALK", Source: "Walked"},
				{Name: "BICYCLE", Source: "Bicycle"},
				{Name: "MOTORCYCLE", Source: "Motorcycle, scooter or moped"},
				{Name: "OTHER", Source: "Other methods"},
			},
		}},
		Scope:        core.ScopeAny,
		ProvinceCode: ProvinceBC,
		Validator:    rangeGate(core.NumericParseable{Index: 0}),
	})
}
