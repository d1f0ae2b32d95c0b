package datasets

import "github.com/JonMunkholm/census2011/internal/core"

func init() {
	registerLanguage()
}

func registerLanguage() {
	core.Register(core.Dataset{
		Key:             "language",
		Label:           "Detailed mother tongue",
		Tiers:           core.StandardTiers,
		HeaderRows:      1,
		GeographyColumn: "Geography",
		IDColumn:        idColumn,
		NameColumn:      "GEOGRAPHY",
		Sources: []core.Source{{
			Label: "input",
			Columns: []core.Column{
				{Name: "TMOTHTONG", Source: "Total - Detailed mother tongue"},
				{Name: "M_SNGLERES", Source: "Single responses"},
				{Name: "M_ENGLISH", Source: "English"},
				{Name: "M_FRENCH", Source: "French"},
				{Name: "M_NONOFFI", Source: "Non-official languages"},
				{Name: "M_ALGONQUI", Source: "Algonquin"},
				{Name: "M_ATIKAMEK", Source: "Atikamekw"},
				{Name: "M_BLACKFOO", Source: "Blackfoot"},
				{Name: "M_CARRIER", Source: "Carrier"},
				{Name: "M_CHILCOTI", Source: "Chilcotin"},
				{Name: "M_CREE", Source: "Cree languages"},
				{Name: "M_SIOUAN", Source: "Siouan languages"},
				{Name: "M_DENE", Source: "Dene"},
				{Name: "M_DOGRIB", Source: "Tlicho (Dogrib)"},
				{Name: "M_GITKSAN", Source: "Gitksan"},
				{Name: "M_INUINNAQ", Source: "Inuinnaqtun"},
				{Name: "M_INUKTITU", Source: "Inuktitut"},
				{Name: "M_KUTCHIN", Source: "Gwich'in"},
				{Name: "M_MALECITE", Source: "Malecite"},
				{Name: "M_MIKMAQ", Source: "Mi'kmaq"},
				{Name: "M_MOHAWK", Source: "Mohawk"},
				{Name: "M_MONTAGNA", Source: "Innu/Montagnais"},
				{Name: "M_NISGAA", Source: "Nisga'a"},
				{Name: "M_NSLAVE", Source: "North Slavey (Hare)"},
				{Name: "M_OJIBWAY", Source: "Ojibway"},
				{Name: "M_OJICREE", Source: "Oji-Cree"},
				{Name: "M_SHUSWAP", Source: "Shuswap (Secwepemctsin)"},
				{Name: "M_SSLAVE", Source: "South Slavey"},
				{Name: "M_TLINGIT", Source: "Tlingit"},
				{Name: "M_ITALIAN", Source: "Italian"},
				{Name: "M_PORTUGUE", Source: "Portuguese"},
				{Name: "M_ROMANIAN", Source: "Romanian"},
				{Name: "M_SPANISH", Source: "Spanish"},
				{Name: "M_DANISH", Source: "Danish"},
				{Name: "M_DUTCH", Source: "Dutch"},
				{Name: "M_FLEMISH", Source: "Flemish"},
				{Name: "M_FRISIAN", Source: "Frisian"},
				{Name: "M_GERMAN", Source: "German"},
				{Name: "M_NORWEGIA", Source: "Norwegian"},
				{Name: "M_SWEDISH", Source: "Swedish"},
				{Name: "M_YIDDISH", Source: "Yiddish"},
				{Name: "M_BOSNIAN", Source: "Bosnian"},
				{Name: "M_BULGARIA", Source: "Bulgarian"},
				{Name: "M_CROATIAN", Source: "Croatian"},
				{Name: "M_CZECH", Source: "Czech"},
				{Name: "M_MACEDONI", Source: "Macedonian"},
				{Name: "M_POLISH", Source: "Polish"},
				{Name: "M_RUSSIAN", Source: "Russian"},
				{Name: "M_SERBIAN", Source: "Serbian"},
				{Name: "M_SERBCROA", Source: "Serbo-Croatian"},
				{Name: "M_SLOVAK", Source: "Slovak"},
				{Name: "M_SLOVENIA", Source: "Slovenian"},
				{Name: "M_UKRAINIA", Source: "Ukrainian"},
				{Name: "M_LATVIAN", Source: "Latvian"},
				{Name: "M_LITHUANI", Source: "Lithuanian"},
				{Name: "M_ESTONIAN", Source: "Estonian"},
				{Name: "M_FINNISH", Source: "Finnish"},
				{Name: "M_HUNGARIA", Source: "Hungarian"},
				{Name: "M_GREEK", Source: "Greek"},
				{Name: "M_ARMENIAN", Source: "Armenian"},
				{Name: "M_TURKISH", Source: "Turkish"},
				{Name: "M_AMHARIC", Source: "Amharic"},
				{Name: "M_ARABIC", Source: "Arabic"},
				{Name: "M_HEBREW", Source: "Hebrew"},
				{Name: "M_MALTESE", Source: "Maltese"},
				{Name: "M_SOMALI", Source: "Somali"},
				{Name: "M_TIGRIGNA", Source: "Tigrigna"},
				{Name: "M_BENGALI", Source: "Bengali"},
				{Name: "M_GUJARATI", Source: "Gujarati"},
				{Name: "M_HINDI", Source: "Hindi"},
				{Name: "M_KURDISH", Source: "Kurdish"},
				{Name: "M_PANJABI", Source: "Panjabi (Punjabi)"},
				{Name: "M_PASHTO", Source: "Pashto"},
				{Name: "M_PERSIAN", Source: "Persian (Farsi)"},
				{Name: "M_SINDHI", Source: "Sindhi"},
				{Name: "M_SINHALA", Source: "Sinhala (Sinhalese)"},
				{Name: "M_URDU", Source: "Urdu"},
				{Name: "M_MALAYALA", Source: "Malayalam"},
				{Name: "M_TAMIL", Source: "Tamil"},
				{Name: "M_TELUGU", Source: "Telugu"},
				{Name: "M_JAPANESE", Source: "Japanese"},
				{Name: "M_KOREAN", Source: "Korean"},
				{Name: "M_CANTONES", Source: "Cantonese"},
				{Name: "M_CHINESE", Source: "Chinese, n.o.s."},
				{Name: "M_MANDARIN", Source: "Mandarin"},
				{Name: "M_TAIWANES", Source: "Taiwanese"},
				{Name: "M_LAO", Source: "Lao"},
				{Name: "M_KHMER", Source: "Khmer (Cambodian)"},
				{Name: "M_VIETNAME", Source: "Vietnamese"},
				{Name: "M_BISAYAN", Source: "Bisayan languages"},
				{Name: "M_ILOCANO", Source: "Ilocano"},
				{Name: "M_MALAY", Source: "Malay"},
				{Name: "M_TAGALOG", Source: "Tagalog (Pilipino, Filipino)"},
				{Name: "M_AKAN", Source: "Akan (Twi)"},
				{Name: "M_SWAHILI", Source: "Swahili"},
				{Name: "M_CREOLES", Source: "Creoles"},
				{Name: "M_OTHER", Source: "Other languages"},
				{Name: "M_MULTIPLE", Source: "Multiple responses"},
				{Name: "M_ENGFRE", Source: "English and French"},
				{Name: "M_ENGNONO", Source: "English and non-official language"},
				{Name: "M_FRENONO", Source: "French and non-official language"},
				{Name: "M_ENGFRENO", Source: "English, French and non-official language"},
			},
		}},
		Scope:        core.ScopeProvince,
		ProvinceCode: ProvinceBC,
		Validator:    core.NumericParseable{Index: 0},
	})
}
