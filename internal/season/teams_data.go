package season

// teamCodes maps every spelling of a constructor seen in timing data to its short code.
var teamCodes = map[int]map[string]string{
	2025: {
		"Red Bull Racing":              "RBR",
		"Ferrari":                      "FER",
		"Aston Martin":                 "AMR",
		"Mercedes":                     "MER",
		"Alpine":                       "APN",
		"Haas F1 Team":                 "HAA",
		"McLaren":                      "MCL",
		"Kick Sauber":                  "KS",
		"Racing Bulls":                 "RB",
		"Williams":                     "WIL",
		"Red Bull Racing Honda RBPT":   "RBR",
		"Aston Martin Aramco Mercedes": "AMR",
		"Racing Bulls Honda RBPT":      "RB",
		"Alpine Renault":               "APN",
		"Haas Ferrari":                 "HAA",
		"McLaren Mercedes":             "MCL",
		"Kick Sauber Ferrari":          "KS",
		"Williams Mercedes":            "WIL",
		"Red Bull":                     "RBR",
		"Alpine F1 Team":               "APN",
	},
	2024: {
		"Red Bull Racing":              "RBR",
		"Ferrari":                      "FER",
		"Aston Martin":                 "AMR",
		"Mercedes":                     "MER",
		"Alpine":                       "APN",
		"Haas F1 Team":                 "HAA",
		"McLaren":                      "MCL",
		"Kick Sauber":                  "KS",
		"RB":                           "RB",
		"Williams":                     "WIL",
		"Red Bull Racing Honda RBPT":   "RBR",
		"Aston Martin Aramco Mercedes": "AMR",
		"Alpine Renault":               "APN",
		"Haas Ferrari":                 "HAA",
		"McLaren Mercedes":             "MCL",
		"Alfa Romeo Ferrari":           "KS",
		"AlphaTauri Honda RBPT":        "RB",
		"Williams Mercedes":            "WIL",
		"Red Bull":                     "RBR",
		"Alpine F1 Team":               "APN",
	},
	2023: {
		"Red Bull Racing":              "RBR",
		"Ferrari":                      "FER",
		"Aston Martin":                 "AMR",
		"Mercedes":                     "MER",
		"Alpine":                       "APN",
		"Haas F1 Team":                 "HAA",
		"McLaren":                      "MCL",
		"Alfa Romeo":                   "ARR",
		"AlphaTauri":                   "APT",
		"Williams":                     "WIL",
		"Red Bull Racing Honda RBPT":   "RBR",
		"Aston Martin Aramco Mercedes": "AMR",
		"Alpine Renault":               "APN",
		"Haas Ferrari":                 "HAA",
		"McLaren Mercedes":             "MCL",
		"Alfa Romeo Ferrari":           "ARR",
		"AlphaTauri Honda RBPT":        "APT",
		"Williams Mercedes":            "WIL",
		"Red Bull":                     "RBR",
		"Alpine F1 Team":               "APN",
	},
	2022: {
		"Red Bull Racing": "RBR",
		"Ferrari":         "FER",
		"Aston Martin":    "AMR",
		"Mercedes":        "MER",
		"Alpine":          "APN",
		"Haas F1 Team":    "HAA",
		"McLaren":         "MCL",
		"Alfa Romeo":      "ARR",
		"AlphaTauri":      "APT",
		"Williams":        "WIL",
		"Red Bull":        "RBR",
		"Alpine F1 Team":  "APN",
	},
	2021: {
		"Red Bull Racing":   "RBR",
		"Mercedes":          "MER",
		"Ferrari":           "FER",
		"Alpine":            "APN",
		"McLaren":           "MCL",
		"Alfa Romeo Racing": "ARR",
		"Aston Martin":      "AMR",
		"Haas F1 Team":      "HAA",
		"AlphaTauri":        "APT",
		"Williams":          "WIL",
		"Red Bull":          "RBR",
		"Alpine F1 Team":    "APN",
		"Alfa Romeo":        "ARR",
	},
	2020: {
		"Red Bull Racing":   "RBR",
		"Renault":           "REN",
		"Racing Point":      "RP",
		"Mercedes":          "MER",
		"Ferrari":           "FER",
		"McLaren":           "MCL",
		"Alfa Romeo Racing": "ARR",
		"Haas F1 Team":      "HAA",
		"AlphaTauri":        "APT",
		"Williams":          "WIL",
		"Red Bull":          "RBR",
		"Alfa Romeo":        "ARR",
	},
	2019: {
		"Red Bull Racing":   "RBR",
		"Renault":           "REN",
		"Racing Point":      "RP",
		"Toro Rosso":        "TR",
		"Mercedes":          "MER",
		"Ferrari":           "FER",
		"McLaren":           "MCL",
		"Alfa Romeo Racing": "ARR",
		"Haas F1 Team":      "HAA",
		"Williams":          "WIL",
		"Red Bull":          "RBR",
		"Alfa Romeo":        "ARR",
	},
	2018: {
		"Red Bull Racing": "RBR",
		"Renault":         "REN",
		"Toro Rosso":      "TR",
		"Force India":     "FI",
		"Sauber":          "SB",
		"Mercedes":        "MER",
		"Ferrari":         "FER",
		"McLaren":         "MCL",
		"Haas F1 Team":    "HAA",
		"Williams":        "WIL",
		"Red Bull":        "RBR",
	},
}

// teamColors maps every spelling of a constructor to its plot color.
var teamColors = map[int]map[string]string{
	2025: {
		"Red Bull Racing":              "#ffe119",
		"Ferrari":                      "#e6194b",
		"Aston Martin":                 "#3cb44b",
		"Mercedes":                     "#00c0bf",
		"Alpine":                       "#f032e6",
		"Haas F1 Team":                 "#ffffff",
		"McLaren":                      "#f58231",
		"Kick Sauber":                  "#00ff00",
		"Racing Bulls":                 "#dcbeff",
		"Williams":                     "#4363d8",
		"Red Bull Racing Honda RBPT":   "#ffe119",
		"Aston Martin Aramco Mercedes": "#3cb44b",
		"Alpine Renault":               "#f032e6",
		"Haas Ferrari":                 "#ffffff",
		"McLaren Mercedes":             "#f58231",
		"Kick Sauber Ferrari":          "#00ff00",
		"Alfa Romeo Ferrari":           "#800000",
		"Racing Bulls Honda RBPT":      "#dcbeff",
		"Williams Mercedes":            "#4363d8",
		"Red Bull":                     "#ffe119",
		"Alpine F1 Team":               "#f032e6",
	},
	2024: {
		"Red Bull Racing":              "#ffe119",
		"Ferrari":                      "#e6194b",
		"Aston Martin":                 "#3cb44b",
		"Mercedes":                     "#00c0bf",
		"Alpine":                       "#f032e6",
		"Haas F1 Team":                 "#ffffff",
		"McLaren":                      "#f58231",
		"Kick Sauber":                  "#00ff00",
		"Kick Sauber Ferrari":          "#00ff00",
		"RB":                           "#dcbeff",
		"Williams":                     "#4363d8",
		"Red Bull Racing Honda RBPT":   "#ffe119",
		"Aston Martin Aramco Mercedes": "#3cb44b",
		"Alpine Renault":               "#f032e6",
		"Haas Ferrari":                 "#ffffff",
		"McLaren Mercedes":             "#f58231",
		"Alfa Romeo Ferrari":           "#800000",
		"AlphaTauri Honda RBPT":        "#dcbeff",
		"Williams Mercedes":            "#4363d8",
		"Red Bull":                     "#ffe119",
		"Alpine F1 Team":               "#f032e6",
		"RB Honda RBPT":                "#dcbeff",
	},
	2023: {
		"Red Bull Racing":              "#ffe119",
		"Ferrari":                      "#e6194b",
		"Aston Martin":                 "#3cb44b",
		"Mercedes":                     "#00c0bf",
		"Alpine":                       "#f032e6",
		"Haas F1 Team":                 "#ffffff",
		"McLaren":                      "#f58231",
		"Alfa Romeo":                   "#800000",
		"AlphaTauri":                   "#dcbeff",
		"Williams":                     "#4363d8",
		"Red Bull Racing Honda RBPT":   "#ffe119",
		"Aston Martin Aramco Mercedes": "#3cb44b",
		"Alpine Renault":               "#f032e6",
		"Haas Ferrari":                 "#ffffff",
		"McLaren Mercedes":             "#f58231",
		"Alfa Romeo Ferrari":           "#800000",
		"AlphaTauri Honda RBPT":        "#dcbeff",
		"Williams Mercedes":            "#4363d8",
		"Red Bull":                     "#ffe119",
		"Alpine F1 Team":               "#f032e6",
	},
	2022: {
		"Red Bull Racing":              "#ffe119",
		"Red Bull Racing RBPT":         "#ffe119",
		"Ferrari":                      "#e6194b",
		"Aston Martin":                 "#3cb44b",
		"Aston Martin Aramco Mercedes": "#3cb44b",
		"Mercedes":                     "#00c0bf",
		"Alpine":                       "#f032e6",
		"Haas F1 Team":                 "#ffffff",
		"Haas Ferrari":                 "#ffffff",
		"McLaren":                      "#f58231",
		"McLaren Mercedes":             "#f58231",
		"Alfa Romeo":                   "#800000",
		"Alfa Romeo Ferrari":           "#800000",
		"AlphaTauri":                   "#dcbeff",
		"AlphaTauri RBPT":              "#dcbeff",
		"Williams":                     "#4363d8",
		"Williams Mercedes":            "#4363d8",
		"Red Bull":                     "#ffe119",
		"Alpine F1 Team":               "#f032e6",
		"Alpine Renault":               "#f032e6",
	},
	2021: {
		"Red Bull Racing":           "#ffe119",
		"Red Bull Racing Honda":     "#ffe119",
		"Mercedes":                  "#00c0bf",
		"Ferrari":                   "#e6194b",
		"Alpine":                    "#f032e6",
		"Alpine Renault":            "#f032e6",
		"McLaren":                   "#f58231",
		"McLaren Mercedes":          "#f58231",
		"Alfa Romeo Racing":         "#800000",
		"Aston Martin":              "#3cb44b",
		"Aston Martin Mercedes":     "#3cb44b",
		"Haas F1 Team":              "#ffffff",
		"Haas Ferrari":              "#ffffff",
		"AlphaTauri":                "#dcbeff",
		"AlphaTauri Honda":          "#dcbeff",
		"Williams":                  "#4363d8",
		"Williams Mercedes":         "#4363d8",
		"Red Bull":                  "#ffe119",
		"Alpine F1 Team":            "#f032e6",
		"Alfa Romeo":                "#800000",
		"Alfa Romeo Racing Ferrari": "#800000",
	},
	2020: {
		"Red Bull Racing":           "#000099",
		"Red Bull Racing Honda":     "#000099",
		"Renault":                   "#ffe119",
		"Racing Point":              "#f032e6",
		"Racing Point BWT Mercedes": "#f032e6",
		"Mercedes":                  "#00c0bf",
		"Ferrari":                   "#e6194b",
		"McLaren":                   "#f58231",
		"McLaren Renault":           "#f58231",
		"Alfa Romeo Racing":         "#800000",
		"Alfa Romeo Racing Ferrari": "#800000",
		"Haas F1 Team":              "#ffffff",
		"Haas Ferrari":              "#ffffff",
		"AlphaTauri":                "#dcbeff",
		"AlphaTauri Honda":          "#dcbeff",
		"Williams":                  "#4363d8",
		"Williams Mercedes":         "#4363d8",
		"Red Bull":                  "#000099",
		"Alfa Romeo":                "#800000",
	},
	2019: {
		"Red Bull Racing":           "#000099",
		"Red Bull Racing Honda":     "#000099",
		"Renault":                   "#ffe119",
		"Racing Point":              "#f032e6",
		"Racing Point BWT Mercedes": "#f032e6",
		"Toro Rosso":                "#dcbeff",
		"Scuderia Toro Rosso Honda": "#dcbeff",
		"Mercedes":                  "#00c0bf",
		"Ferrari":                   "#e6194b",
		"McLaren":                   "#f58231",
		"McLaren Renault":           "#f58231",
		"Alfa Romeo Racing":         "#800000",
		"Alfa Romeo Racing Ferrari": "#800000",
		"Haas F1 Team":              "#ffffff",
		"Haas Ferrari":              "#ffffff",
		"Williams":                  "#4363d8",
		"Williams Mercedes":         "#4363d8",
		"Red Bull":                  "#000099",
		"Alfa Romeo":                "#800000",
	},
	2018: {
		"Red Bull Racing":           "#000099",
		"Red Bull Racing TAG Heuer": "#000099",
		"Renault":                   "#ffe119",
		"Toro Rosso":                "#dcbeff",
		"Scuderia Toro Rosso Honda": "#dcbeff",
		"Force India":               "#f032e6",
		"Force India Sahara":        "#f032e6",
		"Force India Mercedes":      "#f032e6",
		"Sauber":                    "#800000",
		"Sauber Ferrari":            "#800000",
		"Mercedes":                  "#00c0bf",
		"Ferrari":                   "#e6194b",
		"McLaren":                   "#f58231",
		"McLaren Renault":           "#f58231",
		"Haas F1 Team":              "#ffffff",
		"Haas Ferrari":              "#ffffff",
		"Williams":                  "#4363d8",
		"Williams Mercedes":         "#4363d8",
		"Red Bull":                  "#000099",
	},
}
