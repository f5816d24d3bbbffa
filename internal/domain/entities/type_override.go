package entities

// TypeOverrideMode controls how a session type combines with the type declared on the platform.
type TypeOverrideMode string

const (
	TypeModeUnspecified TypeOverrideMode = "TYPE_UNSPECIFIED"
	TypeModeMerge       TypeOverrideMode = "TYPE_MERGE"
	TypeModeReplace     TypeOverrideMode = "TYPE_REPLACE"
)

// SynonymEntry is one canonical value and the phrases that resolve to it.
type SynonymEntry struct {
	Name     string   `json:"name"`
	Synonyms []string `json:"synonyms"`
}

// SynonymType lists the entries of a runtime type.
type SynonymType struct {
	Entries []SynonymEntry `json:"entries"`
}

// TypeOverride is a runtime vocabulary registered for the current session.
type TypeOverride struct {
	Name    string           `json:"name"`
	Mode    TypeOverrideMode `json:"typeOverrideMode"`
	Synonym SynonymType      `json:"synonym"`
}

func (o TypeOverride) clone() TypeOverride {
	if o.Synonym.Entries == nil {
		return o
	}
	entries := make([]SynonymEntry, len(o.Synonym.Entries))
	for i, e := range o.Synonym.Entries {
		entries[i] = SynonymEntry{Name: e.Name, Synonyms: cloneStrings(e.Synonyms)}
	}
	o.Synonym.Entries = entries
	return o
}
