// Package refdata holds the build-time reference tables: the Tokyo Metro
// line/station list and the trip's flight table. Read-only lookups, no
// runtime I/O.
package refdata

import "strings"

// MetroStation is one station on a metro line.
type MetroStation struct {
	Name    string `json:"name"`
	ID      string `json:"id"`
	URLName string `json:"urlName"`
}

// MetroLine is one Tokyo Metro line with its signature color and stations.
type MetroLine struct {
	Name     string         `json:"name"`
	ID       string         `json:"id"`
	Color    string         `json:"color"`
	Stations []MetroStation `json:"stations"`
}

// MetroLines lists the lines relevant to the itinerary.
var MetroLines = []MetroLine{
	{
		Name:  "Ginza Line",
		ID:    "G",
		Color: "#ff9500",
		Stations: []MetroStation{
			{Name: "Shibuya", ID: "G01", URLName: "shibuya"},
			{Name: "Omote-sando", ID: "G02", URLName: "omote-sando"},
			{Name: "Gaien-mae", ID: "G03", URLName: "gaien-mae"},
			{Name: "Aoyama-itchome", ID: "G04", URLName: "aoyama-itchome"},
			{Name: "Akasaka-mitsuke", ID: "G05", URLName: "akasaka-mitsuke"},
			{Name: "Tameike-sanno", ID: "G06", URLName: "tameike-sanno"},
			{Name: "Toranomon", ID: "G07", URLName: "toranomon"},
			{Name: "Shimbashi", ID: "G08", URLName: "shimbashi"},
			{Name: "Ginza", ID: "G09", URLName: "ginza"},
			{Name: "Kyobashi", ID: "G10", URLName: "kyobashi"},
			{Name: "Nihombashi", ID: "G11", URLName: "nihombashi"},
			{Name: "Mitsukoshimae", ID: "G12", URLName: "mitsukoshimae"},
			{Name: "Kanda", ID: "G13", URLName: "kanda"},
			{Name: "Suehirocho", ID: "G14", URLName: "suehirocho"},
			{Name: "Ueno-hirokoji", ID: "G15", URLName: "ueno-hirokoji"},
			{Name: "Ueno", ID: "G16", URLName: "ueno"},
			{Name: "Inaricho", ID: "G17", URLName: "inaricho"},
			{Name: "Tawaramachi", ID: "G18", URLName: "tawaramachi"},
			{Name: "Asakusa", ID: "G19", URLName: "asakusa"},
		},
	},
	{
		Name:  "Marunouchi Line",
		ID:    "M",
		Color: "#f32b2b",
		Stations: []MetroStation{
			{Name: "Ogikubo", ID: "M01", URLName: "ogikubo"},
			{Name: "Shinjuku", ID: "M08", URLName: "shinjuku"},
			{Name: "Shinjuku-sanchome", ID: "M09", URLName: "shinjuku-sanchome"},
			{Name: "Yotsuya", ID: "M12", URLName: "yotsuya"},
			{Name: "Akasaka-mitsuke", ID: "M13", URLName: "akasaka-mitsuke"},
			{Name: "Ginza", ID: "M16", URLName: "ginza"},
			{Name: "Tokyo", ID: "M17", URLName: "tokyo"},
			{Name: "Otemachi", ID: "M18", URLName: "otemachi"},
			{Name: "Ikebukuro", ID: "M25", URLName: "ikebukuro"},
		},
	},
	{
		Name:  "Hibiya Line",
		ID:    "H",
		Color: "#b5b5b5",
		Stations: []MetroStation{
			{Name: "Naka-meguro", ID: "H01", URLName: "naka-meguro"},
			{Name: "Ebisu", ID: "H02", URLName: "ebisu"},
			{Name: "Roppongi", ID: "H04", URLName: "roppongi"},
			{Name: "Ginza", ID: "H09", URLName: "ginza"},
			{Name: "Akihabara", ID: "H16", URLName: "akihabara"},
			{Name: "Ueno", ID: "H18", URLName: "ueno"},
			{Name: "Kita-senju", ID: "H22", URLName: "kita-senju"},
		},
	},
	{
		Name:  "Tozai Line",
		ID:    "T",
		Color: "#009bbf",
		Stations: []MetroStation{
			{Name: "Nakano", ID: "T01", URLName: "nakano"},
			{Name: "Takadanobaba", ID: "T03", URLName: "takadanobaba"},
			{Name: "Iidabashi", ID: "T06", URLName: "iidabashi"},
			{Name: "Otemachi", ID: "T09", URLName: "otemachi"},
			{Name: "Nihombashi", ID: "T10", URLName: "nihombashi"},
		},
	},
	{
		Name:  "Chiyoda Line",
		ID:    "C",
		Color: "#00bb85",
		Stations: []MetroStation{
			{Name: "Yoyogi-uehara", ID: "C01", URLName: "yoyogi-uehara"},
			{Name: "Meiji-jingumae", ID: "C03", URLName: "meiji-jingumae"},
			{Name: "Omote-sando", ID: "C04", URLName: "omote-sando"},
			{Name: "Otemachi", ID: "C11", URLName: "otemachi"},
		},
	},
	{
		Name:  "Yurakucho Line",
		ID:    "Y",
		Color: "#c1a470",
		Stations: []MetroStation{
			{Name: "Ikebukuro", ID: "Y09", URLName: "ikebukuro"},
			{Name: "Iidabashi", ID: "Y13", URLName: "iidabashi"},
			{Name: "Yurakucho", ID: "Y18", URLName: "yurakucho"},
			{Name: "Toyosu", ID: "Y22", URLName: "toyosu"},
		},
	},
	{
		Name:  "Hanzomon Line",
		ID:    "Z",
		Color: "#8f76d6",
		Stations: []MetroStation{
			{Name: "Shibuya", ID: "Z01", URLName: "shibuya"},
			{Name: "Omote-sando", ID: "Z02", URLName: "omote-sando"},
			{Name: "Nagatacho", ID: "Z04", URLName: "nagatacho"},
			{Name: "Otemachi", ID: "Z08", URLName: "otemachi"},
			{Name: "Oshiage", ID: "Z14", URLName: "oshiage"},
		},
	},
	{
		Name:  "Namboku Line",
		ID:    "N",
		Color: "#00ac9b",
		Stations: []MetroStation{
			{Name: "Meguro", ID: "N01", URLName: "meguro"},
			{Name: "Iidabashi", ID: "N10", URLName: "iidabashi"},
			{Name: "Akabane-iwabuchi", ID: "N19", URLName: "akabane-iwabuchi"},
		},
	},
	{
		Name:  "Fukutoshin Line",
		ID:    "F",
		Color: "#9c5e31",
		Stations: []MetroStation{
			{Name: "Ikebukuro", ID: "F09", URLName: "ikebukuro"},
			{Name: "Shinjuku-sanchome", ID: "F13", URLName: "shinjuku-sanchome"},
			{Name: "Meiji-jingumae", ID: "F15", URLName: "meiji-jingumae"},
			{Name: "Shibuya", ID: "F16", URLName: "shibuya"},
		},
	},
}

// FindLine looks a metro line up by its single-letter id, case-insensitive.
func FindLine(id string) *MetroLine {
	for i := range MetroLines {
		if strings.EqualFold(MetroLines[i].ID, id) {
			return &MetroLines[i]
		}
	}
	return nil
}

// FindStations returns every station whose name contains the query,
// case-insensitive, across all lines.
func FindStations(query string) []MetroStation {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []MetroStation
	for _, line := range MetroLines {
		for _, st := range line.Stations {
			if strings.Contains(strings.ToLower(st.Name), query) {
				out = append(out, st)
			}
		}
	}
	return out
}
