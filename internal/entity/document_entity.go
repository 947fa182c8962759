package entity

// Document is the unit of knowledge submitted for indexing. The id is
// caller-supplied and unique within the index; re-indexing the same id
// replaces the stored record.
type Document struct {
	Id     string
	Text   string
	Source string
}

// DocumentRecord pairs a document with its embedding, ready for upsert.
type DocumentRecord struct {
	Id        string
	Text      string
	Source    string
	Embedding []float32
}

// RetrievedDocument is a similarity match returned by the index. Score is
// cosine similarity to the query vector, higher is more similar.
type RetrievedDocument struct {
	Id     string
	Text   string
	Source string
	Score  float64
}
