package chat

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"webcraft/internal/domain"
	"webcraft/internal/domain/models/chat"
	chatSvc "webcraft/internal/domain/services/chat"
	domainllm "webcraft/internal/domain/services/llm"
)

func TestStartTurnValidation(t *testing.T) {
	s := newTestServices(t)
	svc := s.streaming(nil)
	conv := s.newConversation(t, "")

	tests := []struct {
		name    string
		convID  string
		content string
		wantErr error
	}{
		{"blank content", conv.ID, "   ", domain.ErrValidation},
		{"too long", conv.ID, strings.Repeat("x", 32001), domain.ErrValidation},
		{"missing conversation", "missing", "hello", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.StartTurn(context.Background(), tt.convID, &chatSvc.CreateMessageRequest{Content: tt.content})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("StartTurn() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLocalModeEmitsSingleFallback(t *testing.T) {
	s := newTestServices(t)
	svc := s.streaming(nil)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	if mode := svc.Mode(); mode != chatSvc.ModeLocal {
		t.Errorf("Mode() = %q, want local", mode)
	}

	turn, err := svc.StartTurn(ctx, conv.ID, &chatSvc.CreateMessageRequest{Content: "  make a contact form  "})
	if err != nil {
		t.Fatalf("StartTurn() error = %v", err)
	}
	if turn.UserMessage().Content != "make a contact form" {
		t.Errorf("user message = %q, want trimmed content", turn.UserMessage().Content)
	}

	rec := &eventRecorder{}
	if err := turn.Run(ctx, rec.emit); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("events = %v, want exactly one", rec.types())
	}
	ev := rec.events[0]
	if ev.Type != chat.StreamEventFallback || !ev.UseLocalEngine || ev.UserMessage != "make a contact form" {
		t.Errorf("event = %+v, want fallback carrying the user message", ev)
	}

	got, err := s.conversations.GetConversation(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if got.Title != "make a contact form" {
		t.Errorf("Title = %q, want auto-title", got.Title)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != chat.RoleUser {
		t.Errorf("Messages = %+v, want only the user message", got.Messages)
	}
}

func TestStartTurnKeepsExplicitTitle(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "Portfolio")

	if _, err := s.streaming(nil).StartTurn(ctx, conv.ID, &chatSvc.CreateMessageRequest{Content: "add a navbar"}); err != nil {
		t.Fatalf("StartTurn() error = %v", err)
	}

	got, err := s.conversations.GetConversation(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if got.Title != "Portfolio" {
		t.Errorf("Title = %q, want Portfolio", got.Title)
	}
}

func TestCloudTurnCompletes(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	provider := &scriptedProvider{events: []domainllm.StreamEvent{
		{Delta: "Here is the navbar:\n```html\n"},
		{Delta: "<nav class=\"navbar\">Home</nav>\n```\n"},
		{Done: true, Usage: &domainllm.Usage{InputTokens: 10, OutputTokens: 20, StopReason: "end_turn"}},
	}}
	svc := s.streaming(provider)
	if mode := svc.Mode(); mode != chatSvc.ModeCloud {
		t.Errorf("Mode() = %q, want cloud", mode)
	}

	turn, err := svc.StartTurn(ctx, conv.ID, &chatSvc.CreateMessageRequest{Content: "SecureMage is a cybersecurity monitoring tool"})
	if err != nil {
		t.Fatalf("StartTurn() error = %v", err)
	}

	rec := &eventRecorder{}
	if err := turn.Run(ctx, rec.emit); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []chat.StreamEventType{chat.StreamEventChunk, chat.StreamEventChunk, chat.StreamEventDone}
	if got := rec.types(); !reflect.DeepEqual(got, want) {
		t.Fatalf("event types = %v, want %v", got, want)
	}

	if provider.lastReq == nil || len(provider.lastReq.Messages) != 1 || provider.lastReq.Model != "test-model" {
		t.Errorf("provider request = %+v", provider.lastReq)
	}

	got, err := s.conversations.GetConversation(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("Messages = %d, want 2", len(got.Messages))
	}
	assistant := got.Messages[1]
	if assistant.Role != chat.RoleAssistant || assistant.ID != rec.events[2].MessageID {
		t.Errorf("assistant message = %+v, done event = %+v", assistant, rec.events[2])
	}
	if got.ProjectName == nil || *got.ProjectName != "SecureMage" {
		t.Errorf("ProjectName = %v, want SecureMage", got.ProjectName)
	}
	if !containsString(got.FeaturesBuilt, "Navigation") {
		t.Errorf("FeaturesBuilt = %v, want Navigation", got.FeaturesBuilt)
	}

	files, err := s.files.ListFiles(ctx, conv.ID)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(files) != 1 || files[0].Path != "index.html" {
		t.Errorf("files = %+v, want extracted index.html", files)
	}
}

func TestBlankNameDoesNotBlockExtraction(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	if _, err := s.conversations.UpdateContext(ctx, conv.ID, chat.ProjectContext{ProjectName: strPtr("   ")}); err != nil {
		t.Fatalf("UpdateContext() error = %v", err)
	}

	provider := &scriptedProvider{events: []domainllm.StreamEvent{
		{Delta: "Added a navbar."},
		{Done: true},
	}}
	turn, err := s.streaming(provider).StartTurn(ctx, conv.ID, &chatSvc.CreateMessageRequest{Content: "SecureMage is a cybersecurity monitoring tool"})
	if err != nil {
		t.Fatalf("StartTurn() error = %v", err)
	}
	if err := turn.Run(ctx, (&eventRecorder{}).emit); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, err := s.conversations.GetConversation(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if got.ProjectName == nil || *got.ProjectName != "SecureMage" {
		t.Fatalf("ProjectName = %v, want SecureMage", got.ProjectName)
	}
	if got.ProjectSummary == nil || !strings.HasPrefix(*got.ProjectSummary, "SecureMage - ") {
		t.Errorf("ProjectSummary = %v, want it to name SecureMage", got.ProjectSummary)
	}
}

func TestCloudFailureBeforeChunksFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		provider *scriptedProvider
	}{
		{"stream cannot start", &scriptedProvider{err: errors.New("no credentials")}},
		{"error before first chunk", &scriptedProvider{events: []domainllm.StreamEvent{{Error: errors.New("overloaded")}}}},
		{"empty response", &scriptedProvider{events: []domainllm.StreamEvent{{Done: true}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices(t)
			ctx := context.Background()
			conv := s.newConversation(t, "")

			turn, err := s.streaming(tt.provider).StartTurn(ctx, conv.ID, &chatSvc.CreateMessageRequest{Content: "make a todo list"})
			if err != nil {
				t.Fatalf("StartTurn() error = %v", err)
			}

			rec := &eventRecorder{}
			if err := turn.Run(ctx, rec.emit); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(rec.events) != 1 || rec.events[0].Type != chat.StreamEventFallback {
				t.Fatalf("events = %v, want one fallback", rec.types())
			}
			if rec.events[0].UserMessage != "make a todo list" {
				t.Errorf("UserMessage = %q", rec.events[0].UserMessage)
			}
		})
	}
}

func TestCloudFailureAfterChunkEmitsError(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	provider := &scriptedProvider{events: []domainllm.StreamEvent{
		{Delta: "partial"},
		{Error: errors.New("connection reset")},
	}}
	turn, err := s.streaming(provider).StartTurn(ctx, conv.ID, &chatSvc.CreateMessageRequest{Content: "hi"})
	if err != nil {
		t.Fatalf("StartTurn() error = %v", err)
	}

	rec := &eventRecorder{}
	if err := turn.Run(ctx, rec.emit); err == nil {
		t.Errorf("Run() error = nil, want stream failure")
	}

	want := []chat.StreamEventType{chat.StreamEventChunk, chat.StreamEventError}
	if got := rec.types(); !reflect.DeepEqual(got, want) {
		t.Errorf("event types = %v, want %v", got, want)
	}

	got, err := s.conversations.GetConversation(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if len(got.Messages) != 1 {
		t.Errorf("Messages = %d, want only the user message", len(got.Messages))
	}
}

func TestCloudTurnStopsWhenClientGone(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	provider := &scriptedProvider{events: []domainllm.StreamEvent{
		{Delta: "one"},
		{Delta: "two"},
		{Done: true},
	}}
	turn, err := s.streaming(provider).StartTurn(ctx, conv.ID, &chatSvc.CreateMessageRequest{Content: "hi"})
	if err != nil {
		t.Fatalf("StartTurn() error = %v", err)
	}

	rec := &eventRecorder{failAt: 1}
	if err := turn.Run(ctx, rec.emit); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("Run() error = %v, want emit error", err)
	}
	if len(rec.events) != 1 {
		t.Errorf("events = %v, want to stop after the failed emit", rec.types())
	}
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
