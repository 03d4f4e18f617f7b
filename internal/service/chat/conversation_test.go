package chat

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"webcraft/internal/domain"
	"webcraft/internal/domain/models/chat"
	chatSvc "webcraft/internal/domain/services/chat"
)

func TestCreateConversation(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		title     string
		wantTitle string
		wantErr   error
	}{
		{"default title", "", chat.DefaultConversationTitle, nil},
		{"blank title", "   ", chat.DefaultConversationTitle, nil},
		{"trimmed", "  My site ", "My site", nil},
		{"too long", strings.Repeat("x", 201), "", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv, err := s.conversations.CreateConversation(ctx, &chatSvc.CreateConversationRequest{Title: tt.title})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("CreateConversation() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if conv.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", conv.Title, tt.wantTitle)
			}
			if conv.ID == "" || conv.TechStack == nil || conv.FeaturesBuilt == nil {
				t.Errorf("conversation not initialized: %+v", conv)
			}
		})
	}
}

func TestGetConversationAndDelete(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	got, err := s.conversations.GetConversation(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if got.Messages == nil || len(got.Messages) != 0 {
		t.Errorf("Messages = %v, want empty non-nil slice", got.Messages)
	}

	list, err := s.conversations.ListConversations(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListConversations() = %v, %v", list, err)
	}

	if err := s.conversations.DeleteConversation(ctx, conv.ID); err != nil {
		t.Fatalf("DeleteConversation() error = %v", err)
	}
	if _, err := s.conversations.GetConversation(ctx, conv.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetConversation() after delete error = %v, want ErrNotFound", err)
	}
	if err := s.conversations.DeleteConversation(ctx, conv.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second DeleteConversation() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateContextMerges(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	first, err := s.conversations.UpdateContext(ctx, conv.ID, chat.ProjectContext{
		ProjectName: strPtr("Acme"),
		TechStack:   []string{"HTML"},
	})
	if err != nil {
		t.Fatalf("UpdateContext() error = %v", err)
	}
	if first.ProjectName == nil || *first.ProjectName != "Acme" {
		t.Fatalf("ProjectName = %v, want Acme", first.ProjectName)
	}

	second, err := s.conversations.UpdateContext(ctx, conv.ID, chat.ProjectContext{
		ProjectName:    strPtr("Other"),
		TechStack:      []string{"CSS", "HTML"},
		ProjectSummary: strPtr("summary"),
	})
	if err != nil {
		t.Fatalf("UpdateContext() error = %v", err)
	}
	if *second.ProjectName != "Acme" {
		t.Errorf("ProjectName = %q, want first value kept", *second.ProjectName)
	}
	if want := []string{"HTML", "CSS"}; !reflect.DeepEqual(second.TechStack, want) {
		t.Errorf("TechStack = %v, want %v", second.TechStack, want)
	}

	same, err := s.conversations.UpdateContext(ctx, conv.ID, chat.ProjectContext{})
	if err != nil {
		t.Fatalf("empty UpdateContext() error = %v", err)
	}
	if !same.UpdatedAt.Equal(second.UpdatedAt) {
		t.Errorf("empty patch touched UpdatedAt")
	}
}

func TestUpdateContextValidation(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	tests := []struct {
		name  string
		patch chat.ProjectContext
	}{
		{"long name", chat.ProjectContext{ProjectName: strPtr(strings.Repeat("n", 201))}},
		{"blank label", chat.ProjectContext{TechStack: []string{"HTML", ""}}},
		{"long label", chat.ProjectContext{FeaturesBuilt: []string{strings.Repeat("f", 101)}}},
		{"long code", chat.ProjectContext{LastCodeGenerated: strPtr(strings.Repeat("c", 5001))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.conversations.UpdateContext(ctx, conv.ID, tt.patch); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("UpdateContext() error = %v, want ErrValidation", err)
			}
		})
	}

	if _, err := s.conversations.UpdateContext(ctx, "missing", chat.ProjectContext{TechStack: []string{"HTML"}}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateContext() on missing conversation error = %v, want ErrNotFound", err)
	}
}

func TestUpdateContextConcurrentWritersBothLand(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	labels := []string{"HTML", "CSS", "JavaScript", "React", "Tailwind", "Bootstrap"}
	var wg sync.WaitGroup
	for _, label := range labels {
		wg.Add(1)
		go func(label string) {
			defer wg.Done()
			if _, err := s.conversations.UpdateContext(ctx, conv.ID, chat.ProjectContext{TechStack: []string{label}}); err != nil {
				t.Errorf("UpdateContext(%s) error = %v", label, err)
			}
		}(label)
	}
	wg.Wait()

	got, err := s.conversations.GetConversation(ctx, conv.ID)
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if len(got.TechStack) != len(labels) {
		t.Errorf("TechStack = %v, want all %d labels", got.TechStack, len(labels))
	}
}

func TestAddAssistantMessage(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	msg, err := s.conversations.AddAssistantMessage(ctx, conv.ID, &chatSvc.CreateMessageRequest{Content: "<p>generated</p>"})
	if err != nil {
		t.Fatalf("AddAssistantMessage() error = %v", err)
	}
	if msg.Role != chat.RoleAssistant || msg.Seq == 0 {
		t.Errorf("message = %+v", msg)
	}

	if _, err := s.conversations.AddAssistantMessage(ctx, conv.ID, &chatSvc.CreateMessageRequest{Content: "  \n "}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("blank content error = %v, want ErrValidation", err)
	}
	if _, err := s.conversations.AddAssistantMessage(ctx, "missing", &chatSvc.CreateMessageRequest{Content: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing conversation error = %v, want ErrNotFound", err)
	}
}
