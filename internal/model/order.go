package model

import "crud_api/internal/domain"

type Order struct {
	Base
	UserID     string   `json:"userId"`
	ProductIDs []string `json:"productIds"`
	Status     string   `json:"status"`
	Total      float64  `json:"total"`
}

func (o *Order) Validate() error {
	return domain.CheckEnum("status", o.Status, domain.OrderStatuses)
}

type OrderPatch struct {
	UserID     Optional[string]   `json:"userId,omitzero"`
	ProductIDs Optional[[]string] `json:"productIds,omitzero"`
	Status     Optional[string]   `json:"status,omitzero"`
	Total      Optional[float64]  `json:"total,omitzero"`
}

func (p *OrderPatch) Apply(o *Order) {
	p.UserID.apply(&o.UserID)
	p.ProductIDs.apply(&o.ProductIDs)
	p.Status.apply(&o.Status)
	p.Total.apply(&o.Total)
}

func (p *OrderPatch) Validate() error {
	return domain.CheckEnum("status", p.Status.Value, domain.OrderStatuses)
}
