package docs

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// The generator's output is treated as a trusted but loosely-shaped contract:
// any field that is absent or of the wrong JSON shape decodes to its empty
// value instead of failing the whole document. Narrowing happens here, at the
// boundary, so the rest of the pipeline can assume well-typed nodes.

func (m *Module) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name      json.RawMessage `json:"name"`
		Kind      json.RawMessage `json:"kind"`
		Docstring json.RawMessage `json:"docstring"`
		Classes   json.RawMessage `json:"classes"`
		Functions json.RawMessage `json:"functions"`
		Modules   json.RawMessage `json:"modules"`
		Aliases   json.RawMessage `json:"aliases"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*m = *NewModule("")
		return nil
	}
	m.Name = asString(raw.Name)
	m.Kind = asString(raw.Kind)
	m.Docstring = asDocstring(raw.Docstring)
	m.Classes = asOrdered[*Class](raw.Classes)
	m.Functions = asOrdered[*Function](raw.Functions)
	m.Modules = asOrdered[*Module](raw.Modules)
	m.Aliases = asOrdered[*Alias](raw.Aliases)
	return nil
}

func (c *Class) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name       json.RawMessage `json:"name"`
		Kind       json.RawMessage `json:"kind"`
		Docstring  json.RawMessage `json:"docstring"`
		Bases      json.RawMessage `json:"bases"`
		Methods    json.RawMessage `json:"methods"`
		Attributes json.RawMessage `json:"attributes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*c = *NewClass("")
		return nil
	}
	c.Name = asString(raw.Name)
	c.Kind = asString(raw.Kind)
	c.Docstring = asDocstring(raw.Docstring)
	c.Bases = asStrings(raw.Bases)
	c.Methods = asOrdered[*Function](raw.Methods)
	c.Attributes = asOrdered[*Attribute](raw.Attributes)
	return nil
}

func (f *Function) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name       json.RawMessage `json:"name"`
		Kind       json.RawMessage `json:"kind"`
		Signature  json.RawMessage `json:"signature"`
		Docstring  json.RawMessage `json:"docstring"`
		Parameters json.RawMessage `json:"parameters"`
		Returns    json.RawMessage `json:"returns"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*f = Function{}
		return nil
	}
	f.Name = asString(raw.Name)
	f.Kind = asString(raw.Kind)
	f.Signature = asString(raw.Signature)
	f.Docstring = asDocstring(raw.Docstring)
	f.Parameters = asParameters(raw.Parameters)
	f.Returns = Returns{Type: asStringField(raw.Returns, "type")}
	return nil
}

func (a *Attribute) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name      json.RawMessage `json:"name"`
		Type      json.RawMessage `json:"type"`
		Docstring json.RawMessage `json:"docstring"`
		Value     json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = Attribute{}
		return nil
	}
	a.Name = asString(raw.Name)
	a.Type = asString(raw.Type)
	a.Docstring = asDocstring(raw.Docstring)
	a.Value = asString(raw.Value)
	return nil
}

func (a *Alias) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   json.RawMessage `json:"name"`
		Target json.RawMessage `json:"target"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = Alias{}
		return nil
	}
	a.Name = asString(raw.Name)
	a.Target = asString(raw.Target)
	return nil
}

func asString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func asStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var rough []json.RawMessage
	if err := json.Unmarshal(raw, &rough); err != nil {
		return nil
	}
	out := make([]string, 0, len(rough))
	for _, r := range rough {
		if s := asString(r); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asStringField(raw json.RawMessage, field string) string {
	if len(raw) == 0 {
		return ""
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return ""
	}
	return asString(obj[field])
}

func asDocstring(raw json.RawMessage) Docstring {
	if len(raw) == 0 {
		return Docstring{}
	}
	var obj struct {
		Summary     json.RawMessage `json:"summary"`
		Description json.RawMessage `json:"description"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		// Some generators emit a bare string; keep it as the summary.
		return Docstring{Summary: asString(raw)}
	}
	return Docstring{
		Summary:     asString(obj.Summary),
		Description: asString(obj.Description),
	}
}

func asParameters(raw json.RawMessage) []Parameter {
	if len(raw) == 0 {
		return nil
	}
	var rough []json.RawMessage
	if err := json.Unmarshal(raw, &rough); err != nil {
		return nil
	}
	params := make([]Parameter, 0, len(rough))
	for _, r := range rough {
		var p struct {
			Name    json.RawMessage `json:"name"`
			Type    json.RawMessage `json:"type"`
			Default json.RawMessage `json:"default"`
		}
		if err := json.Unmarshal(r, &p); err != nil {
			continue
		}
		params = append(params, Parameter{
			Name:    asString(p.Name),
			Type:    asString(p.Type),
			Default: asString(p.Default),
		})
	}
	return params
}

// asOrdered decodes a JSON object into an insertion-ordered map. Document
// order is the display order downstream, so a plain Go map would not do.
// Malformed input yields an empty map, never a nil one.
func asOrdered[V any](raw json.RawMessage) *orderedmap.OrderedMap[string, V] {
	om := orderedmap.New[string, V]()
	if len(raw) == 0 {
		return om
	}
	if err := json.Unmarshal(raw, om); err != nil {
		return orderedmap.New[string, V]()
	}
	return om
}
