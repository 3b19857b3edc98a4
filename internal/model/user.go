package model

import "crud_api/internal/domain"

type User struct {
	Base
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (u *User) Validate() error {
	return domain.CheckEnum("role", u.Role, domain.UserRoles)
}

type UserPatch struct {
	Email Optional[string] `json:"email,omitzero"`
	Name  Optional[string] `json:"name,omitzero"`
	Role  Optional[string] `json:"role,omitzero"`
}

func (p *UserPatch) Apply(u *User) {
	p.Email.apply(&u.Email)
	p.Name.apply(&u.Name)
	p.Role.apply(&u.Role)
}

func (p *UserPatch) Validate() error {
	return domain.CheckEnum("role", p.Role.Value, domain.UserRoles)
}
