package model

import "crud_api/internal/domain"

type Notification struct {
	Base
	UserID  string `json:"userId"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

func (n *Notification) Validate() error {
	return domain.CheckEnum("type", n.Type, domain.NotificationTypes)
}

type NotificationPatch struct {
	UserID  Optional[string] `json:"userId,omitzero"`
	Type    Optional[string] `json:"type,omitzero"`
	Message Optional[string] `json:"message,omitzero"`
	Read    Optional[bool]   `json:"read,omitzero"`
}

func (p *NotificationPatch) Apply(n *Notification) {
	p.UserID.apply(&n.UserID)
	p.Type.apply(&n.Type)
	p.Message.apply(&n.Message)
	p.Read.apply(&n.Read)
}

func (p *NotificationPatch) Validate() error {
	return domain.CheckEnum("type", p.Type.Value, domain.NotificationTypes)
}
