package model

type Product struct {
	Base
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

type ProductPatch struct {
	Name        Optional[string]  `json:"name,omitzero"`
	Description Optional[string]  `json:"description,omitzero"`
	Price       Optional[float64] `json:"price,omitzero"`
	Stock       Optional[int]     `json:"stock,omitzero"`
}

func (p *ProductPatch) Apply(r *Product) {
	p.Name.apply(&r.Name)
	p.Description.apply(&r.Description)
	p.Price.apply(&r.Price)
	p.Stock.apply(&r.Stock)
}

func (p *ProductPatch) Validate() error { return nil }
