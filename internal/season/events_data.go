package season

// events lists each season's races by race ordinal, the order is the one the
// lap chart batch has always walked, not calendar order.
var events = map[int][]string{
	2025: {
		"Chinese Grand Prix",
		"Japanese Grand Prix",
		"Bahrain Grand Prix",
		"Saudi Arabian Grand Prix",
	},
	2024: {
		"Bahrain Grand Prix",
		"Saudi Arabian Grand Prix",
		"Australian Grand Prix",
		"Japanese Grand Prix",
		"Chinese Grand Prix",
		"Miami Grand Prix",
		"Emilia Romagna Grand Prix",
		"Monaco Grand Prix",
		"Canadian Grand Prix",
		"Spanish Grand Prix",
		"Austrian Grand Prix",
		"British Grand Prix",
		"Hungarian Grand Prix",
		"Belgian Grand Prix",
		"Dutch Grand Prix",
		"Italian Grand Prix",
		"Azerbaijan Grand Prix",
		"Singapore Grand Prix",
		"United States Grand Prix",
		"Mexico City Grand Prix",
		"São Paulo Grand Prix",
		"Las Vegas Grand Prix",
		"Qatar Grand Prix",
		"Abu Dhabi Grand Prix",
	},
	2023: {
		"Abu Dhabi Grand Prix",
		"Las Vegas Grand Prix",
		"São Paulo Grand Prix",
		"Mexico City Grand Prix",
		"United States Grand Prix",
		"Qatar Grand Prix",
		"Japanese Grand Prix",
		"Singapore Grand Prix",
		"Italian Grand Prix",
		"Dutch Grand Prix",
		"Belgian Grand Prix",
		"Hungarian Grand Prix",
		"British Grand Prix",
		"Austrian Grand Prix",
		"Canadian Grand Prix",
		"Spanish Grand Prix",
		"Monaco Grand Prix",
		"Miami Grand Prix",
		"Azerbaijan Grand Prix",
		"Australian Grand Prix",
		"Saudi Arabian Grand Prix",
		"Bahrain Grand Prix",
	},
	2022: {
		"Abu Dhabi Grand Prix",
		"São Paulo Grand Prix",
		"Mexico City Grand Prix",
		"United States Grand Prix",
		"Japanese Grand Prix",
		"Singapore Grand Prix",
		"Italian Grand Prix",
		"Dutch Grand Prix",
		"Belgian Grand Prix",
		"Hungarian Grand Prix",
		"French Grand Prix",
		"Austrian Grand Prix",
		"British Grand Prix",
		"Canadian Grand Prix",
		"Azerbaijan Grand Prix",
		"Monaco Grand Prix",
		"Spanish Grand Prix",
		"Miami Grand Prix",
		"Emilia Romagna Grand Prix",
		"Australian Grand Prix",
		"Saudi Arabian Grand Prix",
		"Bahrain Grand Prix",
	},
	2021: {
		"Abu Dhabi Grand Prix",
		"Saudi Arabian Grand Prix",
		"Qatar Grand Prix",
		"São Paulo Grand Prix",
		"Mexico City Grand Prix",
		"United States Grand Prix",
		"Turkish Grand Prix",
		"Russian Grand Prix",
		"Italian Grand Prix",
		"Dutch Grand Prix",
		"Belgian Grand Prix",
		"Hungarian Grand Prix",
		"British Grand Prix",
		"Austrian Grand Prix",
		"Styrian Grand Prix",
		"French Grand Prix",
		"Azerbaijan Grand Prix",
		"Monaco Grand Prix",
		"Spanish Grand Prix",
		"Portuguese Grand Prix",
		"Emilia Romagna Grand Prix",
		"Bahrain Grand Prix",
	},
	2020: {
		"Abu Dhabi Grand Prix",
		"Sakhir Grand Prix",
		"Bahrain Grand Prix",
		"Turkish Grand Prix",
		"Emilia Romagna Grand Prix",
		"Portuguese Grand Prix",
		"Eifel Grand Prix",
		"Russian Grand Prix",
		"Tuscan Grand Prix",
		"Italian Grand Prix",
		"Belgian Grand Prix",
		"Spanish Grand Prix",
		"70th Anniversary Grand Prix",
		"British Grand Prix",
		"Hungarian Grand Prix",
		"Styrian Grand Prix",
		"Austrian Grand Prix",
	},
	2019: {
		"Abu Dhabi Grand Prix",
		"Brazilian Grand Prix",
		"United States Grand Prix",
		"Mexican Grand Prix",
		"Japanese Grand Prix",
		"Russian Grand Prix",
		"Singapore Grand Prix",
		"Italian Grand Prix",
		"Belgian Grand Prix",
		"Hungarian Grand Prix",
		"German Grand Prix",
		"British Grand Prix",
		"Austrian Grand Prix",
		"French Grand Prix",
		"Canadian Grand Prix",
		"Monaco Grand Prix",
		"Spanish Grand Prix",
		"Azerbaijan Grand Prix",
		"Chinese Grand Prix",
		"Bahrain Grand Prix",
		"Australian Grand Prix",
	},
	2018: {
		"Abu Dhabi Grand Prix",
		"Brazilian Grand Prix",
		"Mexican Grand Prix",
		"United States Grand Prix",
		"Japanese Grand Prix",
		"Russian Grand Prix",
		"Singapore Grand Prix",
		"Italian Grand Prix",
		"Belgian Grand Prix",
		"Hungarian Grand Prix",
		"German Grand Prix",
		"British Grand Prix",
		"Austrian Grand Prix",
		"French Grand Prix",
		"Canadian Grand Prix",
		"Monaco Grand Prix",
		"Spanish Grand Prix",
		"Azerbaijan Grand Prix",
		"Chinese Grand Prix",
		"Bahrain Grand Prix",
		"Australian Grand Prix",
	},
}
