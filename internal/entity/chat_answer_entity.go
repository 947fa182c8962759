package entity

// AnswerSource is a retrieved document as exposed in a chat answer. Text is a
// bounded preview of the stored document text.
type AnswerSource struct {
	Id   string
	Text string
}

// ChatAnswer is the structured result of one answering run: the generated
// answer plus the documents that were supplied as context, in retrieval order.
type ChatAnswer struct {
	Answer       string
	Sources      []*AnswerSource
	ContextCount int
}
