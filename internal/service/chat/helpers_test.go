package chat

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"webcraft/internal/domain/models/chat"
	chatRepo "webcraft/internal/domain/repositories/chat"
	chatSvc "webcraft/internal/domain/services/chat"
	domainllm "webcraft/internal/domain/services/llm"
	"webcraft/internal/repository/sqlite"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// testServices wires the services onto a throwaway SQLite database
type testServices struct {
	convRepo      chatRepo.ConversationRepository
	msgRepo       chatRepo.MessageRepository
	locks         *KeyedMutex
	conversations chatSvc.ConversationService
	files         chatSvc.ProjectFileService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "chat.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &sqlite.RepositoryConfig{DB: db, Logger: testLogger}
	s := &testServices{
		convRepo: sqlite.NewConversationRepository(cfg),
		msgRepo:  sqlite.NewMessageRepository(cfg),
		locks:    NewKeyedMutex(),
	}
	s.conversations = NewConversationService(s.convRepo, s.msgRepo, s.locks, nil, testLogger)
	s.files = NewProjectFileService(s.convRepo, sqlite.NewProjectFileRepository(cfg), sqlite.NewTransactionManager(cfg), nil, testLogger)
	return s
}

func (s *testServices) streaming(provider domainllm.Provider) chatSvc.StreamingService {
	cfg := StreamingConfig{
		ConversationRepo: s.convRepo,
		MessageRepo:      s.msgRepo,
		FileService:      s.files,
		Locks:            s.locks,
		Provider:         provider,
		Model:            "test-model",
		MaxTokens:        1024,
		Logger:           testLogger,
	}
	return NewStreamingService(cfg)
}

func (s *testServices) newConversation(t *testing.T, title string) *chat.Conversation {
	t.Helper()
	conv, err := s.conversations.CreateConversation(context.Background(), &chatSvc.CreateConversationRequest{Title: title})
	if err != nil {
		t.Fatalf("CreateConversation() error = %v", err)
	}
	return conv
}

// scriptedProvider replays a fixed list of stream events
type scriptedProvider struct {
	events  []domainllm.StreamEvent
	err     error
	lastReq *domainllm.GenerateRequest
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) StreamText(ctx context.Context, req *domainllm.GenerateRequest) (<-chan domainllm.StreamEvent, error) {
	p.lastReq = req
	if p.err != nil {
		return nil, p.err
	}
	ch := make(chan domainllm.StreamEvent, len(p.events))
	for _, ev := range p.events {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

// eventRecorder collects emitted events
type eventRecorder struct {
	events []chat.StreamEvent
	failAt int // emit fails on this 1-based call; 0 never fails
}

func (r *eventRecorder) emit(ev chat.StreamEvent) error {
	r.events = append(r.events, ev)
	if r.failAt > 0 && len(r.events) == r.failAt {
		return io.ErrClosedPipe
	}
	return nil
}

func (r *eventRecorder) types() []chat.StreamEventType {
	out := make([]chat.StreamEventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func strPtr(s string) *string { return &s }
