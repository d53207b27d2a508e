package domain

// PlaceholderSummary is stored and notified when summarization is disabled,
// fails, or the model returns nothing.
const PlaceholderSummary = "Résumé non généré."

// MaxRecordBytes is the serialized size ceiling for a SummaryRecord,
// matching the DynamoDB 400 KB item limit. Oversized records are rejected,
// never truncated.
const MaxRecordBytes = 400000

// SummaryInputLimit caps the number of characters handed to the summarizer.
const SummaryInputLimit = 1000

// NotificationExcerptLimit caps the summary excerpt embedded in a
// notification body. Kept separate from SummaryInputLimit: the two limits
// happen to be equal but are not coupled.
const NotificationExcerptLimit = 1000

// SummaryRecord is the item persisted for each ingested file, keyed by file
// name. Attribute names are part of the stored schema and must not change.
type SummaryRecord struct {
	FileName string `json:"NomFichier" dynamodbav:"NomFichier"`
	Bucket   string `json:"Bucket" dynamodbav:"Bucket"`
	Text     string `json:"Texte" dynamodbav:"Texte"`
	Summary  string `json:"Résumé" dynamodbav:"Résumé"`
}

// NotificationMessage is the transient subject/body pair published per
// ingestion.
type NotificationMessage struct {
	Subject string
	Body    string
}

// Truncate returns the first n characters of s. It counts runes, not bytes,
// so multi-byte text is never cut mid-character.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
