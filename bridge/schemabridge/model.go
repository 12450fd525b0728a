package schemabridge

import "github.com/jrazmi/pollschema/core/schemas"

// ModelSummary is one entry of the model list.
type ModelSummary struct {
	Name   string          `json:"name"`
	Table  string          `json:"table"`
	Shapes []schemas.Shape `json:"shapes"`
}

func toSummary(m *schemas.Model) ModelSummary {
	return ModelSummary{
		Name:   m.Name,
		Table:  m.Table,
		Shapes: m.Shapes(),
	}
}
