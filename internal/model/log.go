package model

import "crud_api/internal/domain"

type Log struct {
	Base
	Level    string         `json:"level"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata"`
}

func (l *Log) Validate() error {
	return domain.CheckEnum("level", l.Level, domain.LogLevels)
}

type LogPatch struct {
	Level    Optional[string]         `json:"level,omitzero"`
	Message  Optional[string]         `json:"message,omitzero"`
	Metadata Optional[map[string]any] `json:"metadata,omitzero"`
}

func (p *LogPatch) Apply(l *Log) {
	p.Level.apply(&l.Level)
	p.Message.apply(&l.Message)
	p.Metadata.apply(&l.Metadata)
}

func (p *LogPatch) Validate() error {
	return domain.CheckEnum("level", p.Level.Value, domain.LogLevels)
}
