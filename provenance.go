package mappings

// SourceDefault marks values that were filled in because the document omitted them.
const SourceDefault = "default"

// Provenance contains source information for global settings.
type Provenance struct {
	Fields []FieldProvenance
}

// FieldProvenance describes where a field's value came from.
type FieldProvenance struct {
	KeyPath    string `json:"key_path"`    // Document key (e.g., "global.debounce")
	SourceName string `json:"source_name"` // Source identifier (e.g., "file:mappings.toml") or SourceDefault
}

// Lookup returns the provenance recorded for keyPath.
func (p *Provenance) Lookup(keyPath string) (FieldProvenance, bool) {
	if p == nil {
		return FieldProvenance{}, false
	}
	for _, f := range p.Fields {
		if f.KeyPath == keyPath {
			return f, true
		}
	}
	return FieldProvenance{}, false
}

// Defaulted reports whether keyPath was filled in with its default.
func (p *Provenance) Defaulted(keyPath string) bool {
	f, ok := p.Lookup(keyPath)
	return ok && f.SourceName == SourceDefault
}

func buildProvenance(doc *Document, sourceName string) *Provenance {
	var g GlobalDocument
	if doc.Global != nil {
		g = *doc.Global
	}

	from := func(set bool) string {
		if set {
			return sourceName
		}
		return SourceDefault
	}

	prov := &Provenance{Fields: []FieldProvenance{
		{KeyPath: "global.debounce", SourceName: from(g.Debounce != nil)},
		{KeyPath: "global.combo_window", SourceName: from(g.ComboWindow != nil)},
		{KeyPath: "global.microphone", SourceName: from(g.Microphone != nil)},
	}}
	if doc.Freestyle != nil {
		prov.Fields = append(prov.Fields, FieldProvenance{KeyPath: "freestyle", SourceName: sourceName})
	}
	return prov
}
