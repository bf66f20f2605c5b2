package domain

// MinistryCatalogEntry is one row of the static ministry picker shown when
// creating a ministry. It is reference data, not a stored record.
type MinistryCatalogEntry struct {
	Sigle    string `json:"sigle"`
	Name     string `json:"name"`
	Minister string `json:"minister"`
}

// MinistryCatalog returns the fixed catalog of known ministries.
func MinistryCatalog() []MinistryCatalogEntry {
	return []MinistryCatalogEntry{
		{Sigle: "MF", Name: "Ministère des Finances", Minister: "Ministre des Finances"},
		{Sigle: "MEF", Name: "Ministère de l'Économie et des Finances", Minister: "Ministre de l'Économie et des Finances"},
		{Sigle: "MPT", Name: "Ministère des Postes et Télécommunications", Minister: "Ministre des PT"},
	}
}
