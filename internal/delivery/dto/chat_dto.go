package dto

type ChatRequest struct {
	Message        string `json:"message" validate:"required,min=1,max=2000"`
	ConversationID string `json:"conversation_id"`
	UserContext    string `json:"user_context"`
}

type AnalyzeUrgencyRequest struct {
	Message string `json:"message" validate:"required,min=1,max=2000"`
}

type HelpTopicResponse struct {
	Topic    string `json:"topic"`
	Guidance string `json:"guidance"`
}
