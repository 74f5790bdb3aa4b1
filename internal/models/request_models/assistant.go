package request_models

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type TranslateRequest struct {
	Text       string `json:"text" binding:"required"`
	SourceLang string `json:"source_lang" binding:"required"`
	TargetLang string `json:"target_lang" binding:"required"`
}

type FareRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
	City string `json:"city" binding:"required"`
}
