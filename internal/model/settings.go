package model

import "crud_api/internal/domain"

type Settings struct {
	Base
	UserID        string `json:"userId"`
	Theme         string `json:"theme"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

func (s *Settings) Validate() error {
	return domain.CheckEnum("theme", s.Theme, domain.Themes)
}

type SettingsPatch struct {
	UserID        Optional[string] `json:"userId,omitzero"`
	Theme         Optional[string] `json:"theme,omitzero"`
	Language      Optional[string] `json:"language,omitzero"`
	Notifications Optional[bool]   `json:"notifications,omitzero"`
}

func (p *SettingsPatch) Apply(s *Settings) {
	p.UserID.apply(&s.UserID)
	p.Theme.apply(&s.Theme)
	p.Language.apply(&s.Language)
	p.Notifications.apply(&s.Notifications)
}

func (p *SettingsPatch) Validate() error {
	return domain.CheckEnum("theme", p.Theme.Value, domain.Themes)
}
