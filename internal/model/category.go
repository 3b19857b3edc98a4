package model

// Category nests under ParentID; a nil ParentID marks a root category.
type Category struct {
	Base
	Name        string  `json:"name"`
	ParentID    *string `json:"parentId"`
	Slug        string  `json:"slug"`
	Description string  `json:"description,omitempty"`
}

type CategoryPatch struct {
	Name        Optional[string]  `json:"name,omitzero"`
	ParentID    Optional[*string] `json:"parentId,omitzero"`
	Slug        Optional[string]  `json:"slug,omitzero"`
	Description Optional[string]  `json:"description,omitzero"`
}

func (p *CategoryPatch) Apply(c *Category) {
	p.Name.apply(&c.Name)
	p.ParentID.apply(&c.ParentID)
	p.Slug.apply(&c.Slug)
	p.Description.apply(&c.Description)
}

func (p *CategoryPatch) Validate() error { return nil }
