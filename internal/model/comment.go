package model

type Comment struct {
	Base
	UserID  string `json:"userId"`
	PostID  string `json:"postId"`
	Content string `json:"content"`
	Likes   int    `json:"likes"`
}

type CommentPatch struct {
	UserID  Optional[string] `json:"userId,omitzero"`
	PostID  Optional[string] `json:"postId,omitzero"`
	Content Optional[string] `json:"content,omitzero"`
	Likes   Optional[int]    `json:"likes,omitzero"`
}

func (p *CommentPatch) Apply(c *Comment) {
	p.UserID.apply(&c.UserID)
	p.PostID.apply(&c.PostID)
	p.Content.apply(&c.Content)
	p.Likes.apply(&c.Likes)
}

func (p *CommentPatch) Validate() error { return nil }
