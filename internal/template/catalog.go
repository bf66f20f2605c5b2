// Package template serves the static document template catalog. Templates are
// reference data; documents copy their content at creation time on the
// frontend side.
package template

// Summary is one row of the template picker.
type Summary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Session string `json:"session"`
	Phase   string `json:"phase"`
}

// Detail is a full template with its markdown body.
type Detail struct {
	ID      string `json:"id"`
	Format  string `json:"format"`
	Content string `json:"content"`
}

type Catalog struct{}

func NewCatalog() *Catalog { return &Catalog{} }

// List returns the fixed set of platform templates.
func (c *Catalog) List() []Summary {
	return []Summary{
		{ID: "plat-bud-elab", Name: "Budget prévisionnel (Plateforme)", Session: "budgetaire", Phase: "elaboration"},
		{ID: "plat-close-ca", Name: "ODJ - Arrêt des comptes (Plateforme)", Session: "cloture", Phase: "elaboration"},
	}
}

// Detail returns the markdown body for any id. Unknown ids still resolve to a
// skeleton template; the picker is advisory, not authoritative.
func (c *Catalog) Detail(id string) Detail {
	return Detail{
		ID:      id,
		Format:  "markdown",
		Content: "# Modèle " + id + "\nContenu à compléter",
	}
}
