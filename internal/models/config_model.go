package models

// GlobalConfig is the singleton configuration document stored at
// settings/global_config. It currently carries only the shared Gemini API
// key managed by administrators; an empty or absent key means the service
// falls back to the environment-supplied default.
type GlobalConfig struct {
	GeminiAPIKey string `json:"geminiApiKey,omitempty" firestore:"geminiApiKey,omitempty"`
}
