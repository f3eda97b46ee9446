package stage

import "encoding/json"

const (
	GroupRoof   = "Roof"
	GroupUplift = "Uplift"
)

// Entry is one line of the calculation trail. Value is in kN.
type Entry struct {
	Group   string  `json:"group"`
	Label   string  `json:"label"`
	Formula string  `json:"formula"`
	Value   float64 `json:"value_kn"`
}

// Ledger is an append-only, ordered list of entries. The zero value is empty
// and ready to use; callers outside this package only read it.
type Ledger struct {
	entries []Entry
}

func (l *Ledger) add(e Entry) {
	l.entries = append(l.entries, e)
}

func (l Ledger) Len() int { return len(l.entries) }

// Entries returns a copy, so the ledger itself cannot be edited through it.
func (l Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Group returns the entries of one group in ledger order.
func (l Ledger) Group(name string) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if e.Group == name {
			out = append(out, e)
		}
	}
	return out
}

// Groups lists group names in order of first appearance.
func (l Ledger) Groups() []string {
	var names []string
	seen := make(map[string]bool)
	for _, e := range l.entries {
		if !seen[e.Group] {
			seen[e.Group] = true
			names = append(names, e.Group)
		}
	}
	return names
}

// Join returns a new ledger holding l's entries followed by extra.
func (l Ledger) Join(extra ...Entry) Ledger {
	out := Ledger{entries: l.Entries()}
	for _, e := range extra {
		out.add(e)
	}
	return out
}

func (l Ledger) MarshalJSON() ([]byte, error) {
	if l.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.entries)
}

func (l *Ledger) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	l.entries = entries
	return nil
}
