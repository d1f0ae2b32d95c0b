package datasets

import "github.com/JonMunkholm/census2011/internal/core"

func init() {
	registerHouseholds()
}

func registerHouseholds() {
	core.Register(core.Dataset{
		Key:             "households",
		Label:           "Dwellings and household size",
		Tiers:           core.CityTiers,
		HeaderRows:      1,
		GeographyColumn: "Geography",
		IDColumn:        idColumn,
		NameColumn:      "GEOGRAPHY",
		Sources: []core.Source{{
			Label: "input",
			Columns: []core.Column{
				{Name: "TOCDWLSTRC", Source: "Total - Structural type of dwelling"},
				{Name: "SNGLEDET", Source: "Single-detached house"},
				{Name: "APT5MORE", Source: "Apartment, building that has five or more storeys"},
				{Name: "MOVABLE", Source: "Movable dwelling"},
				{Name: "SEMIDET", Source: "Semi-detached house"},
				{Name: "ROWHOUSE", Source: "Row house"},
				{Name: "APTDUPLX", Source: "Apartment, duplex"},
				{Name: "APT5LESS", Source: "Apartment, building that has fewer than five storeys"},
				{Name: "OTHRSATT", Source: "Other single-attached house"},
				{Name: "THHOLDSIZE", Source: "Total - Private households"},
				{Name: "1PERSON", Source: "1 person"},
				{Name: "2PERSON", Source: "2 persons"},
				{Name: "3PERSON", Source: "3 persons"},
				{Name: "45PERSON", Source: "4 persons"},
				{Name: "6PPERSON", Source: "6 or more persons"},
				{Name: "NUMPERS", Source: "Number of persons in private households"},
				{Name: "AVGPERS", Source: "Average number of persons in private households"},
			},
		}},
		Scope:        core.ScopeProvince,
		ProvinceCode: ProvinceBC,
		Validator:    core.NumericParseable{Index: 0},
	})
}
