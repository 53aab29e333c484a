package domain

// SnapshotDiff represents the changes between two snapshots of a session.
// It is designed to be serialized to JSON for partial updates on the client.
type SnapshotDiff struct {
	// SessionID is always present to identify the target.
	SessionID string `json:"session_id"`

	Common *CommonFields `json:"commonFieldData,omitempty"`

	RichBody *string `json:"richBody,omitempty"`

	// TemplateID is set when the selection changed; empty means cleared.
	TemplateID *string `json:"selectedTemplate,omitempty"`

	// Fields contains only changed, added or deleted keys.
	// For deletions, the key is present with a nil value.
	Fields map[string]any `json:"templateFieldData,omitempty"`
}

// Diff calculates the difference between oldSnap and newSnap.
// If oldSnap is nil, it returns a diff representing the entire newSnap (initial load).
// It returns nil when nothing changed.
func Diff(sessionID string, oldSnap, newSnap *Snapshot) *SnapshotDiff {
	if newSnap == nil {
		return nil
	}

	diff := &SnapshotDiff{SessionID: sessionID}

	if oldSnap == nil || oldSnap.Common != newSnap.Common {
		c := newSnap.Common
		diff.Common = &c
	}
	if oldSnap == nil || oldSnap.RichBody != newSnap.RichBody {
		b := newSnap.RichBody
		diff.RichBody = &b
	}
	if oldSnap == nil || templateID(oldSnap.Template) != templateID(newSnap.Template) {
		id := templateID(newSnap.Template)
		diff.TemplateID = &id
	}
	diff.Fields = diffFields(oldSnap, newSnap)

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func templateID(t *Template) string {
	if t == nil {
		return ""
	}
	return t.ID
}

func diffFields(old, new *Snapshot) map[string]any {
	delta := make(map[string]any)

	for k, v := range new.Fields.All() {
		if old != nil {
			if prev, ok := old.Fields.Get(k); ok && prev.Equal(v) {
				continue
			}
		}
		delta[k] = v.Interface()
	}

	if old != nil {
		for k := range old.Fields.All() {
			if _, ok := new.Fields.Get(k); !ok {
				delta[k] = nil
			}
		}
	}

	if len(delta) == 0 {
		return nil
	}
	return delta
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *SnapshotDiff) IsEmpty() bool {
	return d.Common == nil &&
		d.RichBody == nil &&
		d.TemplateID == nil &&
		len(d.Fields) == 0
}
