package handler

import "net/http"

// Handlers groups the HTTP handlers mounted by RegisterRoutes
type Handlers struct {
	Health        *HealthHandler
	Conversations *ConversationHandler
	Messages      *MessageHandler
	Files         *FileHandler
	Templates     *TemplateHandler
	Metrics       http.Handler // optional
}

// RegisterRoutes mounts the API on mux
func RegisterRoutes(mux *http.ServeMux, h Handlers) {
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("GET /templates", h.Templates.ListTemplates)
	mux.HandleFunc("POST /generate", h.Templates.Generate)

	mux.HandleFunc("GET /conversations", h.Conversations.ListConversations)
	mux.HandleFunc("POST /conversations", h.Conversations.CreateConversation)
	mux.HandleFunc("GET /conversations/{id}", h.Conversations.GetConversation)
	mux.HandleFunc("DELETE /conversations/{id}", h.Conversations.DeleteConversation)
	mux.HandleFunc("PUT /conversations/{id}/context", h.Conversations.UpdateContext)
	mux.HandleFunc("POST /conversations/{id}/assistant-messages", h.Conversations.AddAssistantMessage)

	mux.HandleFunc("POST /conversations/{id}/messages", h.Messages.SendMessage) // SSE

	mux.HandleFunc("GET /conversations/{id}/files", h.Files.ListFiles)
	mux.HandleFunc("POST /conversations/{id}/files", h.Files.SaveFile)
	mux.HandleFunc("POST /conversations/{id}/files/bulk", h.Files.SaveFiles)
	mux.HandleFunc("GET /conversations/{id}/preview", h.Files.Preview)
	mux.HandleFunc("PUT /files/{id}", h.Files.UpdateFile)
	mux.HandleFunc("DELETE /files/{id}", h.Files.DeleteFile)
}
