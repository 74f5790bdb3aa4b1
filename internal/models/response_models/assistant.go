package response_models

type ChatResponse struct {
	Reply string `json:"reply"`
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	Pronunciation  string `json:"pronunciation,omitempty"`
}
