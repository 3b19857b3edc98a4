package model

type Tag struct {
	Base
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

type TagPatch struct {
	Name        Optional[string] `json:"name,omitzero"`
	Color       Optional[string] `json:"color,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
}

func (p *TagPatch) Apply(t *Tag) {
	p.Name.apply(&t.Name)
	p.Color.apply(&t.Color)
	p.Description.apply(&t.Description)
}

func (p *TagPatch) Validate() error { return nil }
