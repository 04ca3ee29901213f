package domain

import "time"

// SourceKind is the origin of the summarized text.
type SourceKind string

const (
	SourceNote     SourceKind = "note"
	SourceDocument SourceKind = "document"
)

// Summary is the durable record produced by the summarization pipeline.
//
// OfflineSummary is always present once the record exists. OnlineSummary is
// present only after at least one successful call to the online summarizer;
// HasOnlineSummary tracks success, not attempts. After creation only the
// online fields (and UpdatedAt) may change, and only through Refresh.
type Summary struct {
	ID               string     `json:"id"`
	SourceKind       SourceKind `json:"source_kind"`
	SourceLabel      string     `json:"source_label"`
	FullTextLength   int        `json:"full_text_length"`
	OfflineSummary   string     `json:"offline_summary"`
	OnlineSummary    string     `json:"online_summary,omitempty"`
	HasOnlineSummary bool       `json:"has_online_summary"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
