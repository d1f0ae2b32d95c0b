package datasets

import "github.com/JonMunkholm/census2011/internal/core"

func init() {
	registerAge()
}

// ageGroups are the source headers shared by the male and female subtables.
var ageGroups = []string{
	"Total - Age",
	"0 to 4 years",
	"5 to 9 years",
	"10 to 14 years",
	"15 to 19 years",
	"20 to 24 years",
	"25 to 29 years",
	"30 to 34 years",
	"35 to 39 years",
	"40 to 44 years",
	"45 to 49 years",
	"50 to 54 years",
	"55 to 59 years",
	"60 to 64 years",
	"65 to 69 years",
	"70 to 74 years",
	"75 to 79 years",
	"80 to 84 years",
	"85 to 89 years",
	"90 to 94 years",
	"95 to 99 years",
	"100 years and over",
}

func registerAge() {
	core.Register(core.Dataset{
		Key:             "age",
		Label:           "Age and sex",
		Tiers:           core.StandardTiers,
		HeaderRows:      1,
		GeographyColumn: "Geography",
		IDColumn:        idColumn,
		NameColumn:      "NAME",
		Sources: []core.Source{
			{Label: "male", Columns: ageColumns([]string{
				"MTPOP",
				"M0_4",
				"M5_9",
				"M10_14",
				"M15_19",
				"M20_24",
				"M25_29",
				"M30_34",
				"M35_39",
				"M40_44",
				"M45_49",
				"M50_54",
				"M55_59",
				"M60_64",
				"M65_69",
				"M70_74",
				"M75_79",
				"M80_84",
				"M85_89",
				"M90_94",
				"M95_99",
				"MOVER100",
			})},
			{Label: "female", Columns: ageColumns([]string{
				"FTPOP",
				"F0_4",
				"F5_9",
				"F10_14",
				"F15_19",
				"F20_24",
				"F25_29",
				"F30_34",
				"F35_39",
				"F40_44",
				"F45_49",
				"F50_54",
				"F55_59",
				"F60_64",
				"F65_69",
				"F70_74",
				"F75_79",
				"F80_84",
				"F85_89",
				"F90_94",
				"F95_99",
				"FOVER100",
			})},
		},
		Scope:        core.ScopeProvince,
		ProvinceCode: ProvinceBC,
		Validator:    core.SumConsistency{Total: 0, Tolerance: core.DefaultSumTolerance},
		DerivedTotal: "TOTALPOP",
	})
}

// ageColumns pairs destination names with ageGroups.
func ageColumns(names []string) []core.Column {
	if len(names) != len(ageGroups) {
		panic("age: column names do not match age groups")
	}
	cols := make([]core.Column, len(names))
	for i, name := range names {
		cols[i] = core.Column{Name: name, Source: ageGroups[i]}
	}
	return cols
}
