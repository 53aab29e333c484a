package domain

import "time"

// DefaultRichBody seeds the editor when a rich template is entered with an empty body.
const DefaultRichBody = "<p>Start writing your document...</p>"

// UntitledDocument is the title of a document with neither subject nor declarant.
const UntitledDocument = "Untitled"

// CommonFields are present regardless of the selected template.
type CommonFields struct {
	Subject       string `json:"subject"`
	RecipientName string `json:"recipientName"`
}

// CommonFieldsPatch is a partial update of CommonFields. Nil members are left untouched.
type CommonFieldsPatch struct {
	Subject       *string `json:"subject,omitempty" mapstructure:"subject"`
	RecipientName *string `json:"recipientName,omitempty" mapstructure:"recipientName"`
}

// Merge applies the patch shallowly and returns the result.
func (c CommonFields) Merge(p CommonFieldsPatch) CommonFields {
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.RecipientName != nil {
		c.RecipientName = *p.RecipientName
	}
	return c
}

// Snapshot is the unit of persistence: everything needed to reconstruct one document.
// The full template is kept so older snapshots stay valid when the catalog changes.
type Snapshot struct {
	Common   CommonFields `json:"commonFieldData"`
	RichBody string       `json:"richBody"`
	Template *Template    `json:"selectedTemplate"`
	Fields   FieldData    `json:"templateFieldData"`
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := s
	if s.Template != nil {
		t := *s.Template
		out.Template = &t
	}
	out.Fields = s.Fields.Clone()
	return out
}

// Title names the document: the subject, else the declarant, else "Untitled".
func (s Snapshot) Title() string {
	if s.Common.Subject != "" {
		return s.Common.Subject
	}
	if v, ok := s.Fields.Get("declarantName"); ok && v.String() != "" {
		return v.String()
	}
	return UntitledDocument
}

// SavedDocumentRecord is a Snapshot stamped by the persistence adapter.
type SavedDocumentRecord struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"savedAt"`
	Snapshot
}
