package dto

// AssistantQueryRequest defines the data needed to ask the business
// assistant a question.
type AssistantQueryRequest struct {
	Text string `json:"text" binding:"required"`
}

// AssistantReplyResponse carries the assistant's free-text reply. The
// text is line-delimited Markdown; no schema is enforced on it.
type AssistantReplyResponse struct {
	Reply string `json:"reply"`
}
