package model

type Review struct {
	Base
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}

type ReviewPatch struct {
	UserID    Optional[string] `json:"userId,omitzero"`
	ProductID Optional[string] `json:"productId,omitzero"`
	Rating    Optional[int]    `json:"rating,omitzero"`
	Title     Optional[string] `json:"title,omitzero"`
	Body      Optional[string] `json:"body,omitzero"`
}

func (p *ReviewPatch) Apply(r *Review) {
	p.UserID.apply(&r.UserID)
	p.ProductID.apply(&r.ProductID)
	p.Rating.apply(&r.Rating)
	p.Title.apply(&r.Title)
	p.Body.apply(&r.Body)
}

func (p *ReviewPatch) Validate() error { return nil }
