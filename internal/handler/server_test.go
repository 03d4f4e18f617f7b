package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"webcraft/internal/domain/models/chat"
	domainllm "webcraft/internal/domain/services/llm"
	"webcraft/internal/handler/sse"
	"webcraft/internal/repository/sqlite"
	serviceChat "webcraft/internal/service/chat"
	"webcraft/internal/service/generator"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestMux wires the real services onto a temporary SQLite database.
// A nil provider runs the server in local mode.
func newTestMux(t *testing.T, provider domainllm.Provider) *http.ServeMux {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "handler.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlite.Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &sqlite.RepositoryConfig{DB: db, Logger: testLogger}
	convRepo := sqlite.NewConversationRepository(cfg)
	msgRepo := sqlite.NewMessageRepository(cfg)
	locks := serviceChat.NewKeyedMutex()

	conversations := serviceChat.NewConversationService(convRepo, msgRepo, locks, nil, testLogger)
	files := serviceChat.NewProjectFileService(convRepo, sqlite.NewProjectFileRepository(cfg), sqlite.NewTransactionManager(cfg), nil, testLogger)
	streaming := serviceChat.NewStreamingService(serviceChat.StreamingConfig{
		ConversationRepo: convRepo,
		MessageRepo:      msgRepo,
		FileService:      files,
		Locks:            locks,
		Provider:         provider,
		Logger:           testLogger,
	})

	catalog, err := generator.NewCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	mux := http.NewServeMux()
	RegisterRoutes(mux, Handlers{
		Health:        NewHealthHandler(streaming),
		Conversations: NewConversationHandler(conversations, testLogger),
		Messages:      NewMessageHandler(streaming, &sse.Config{}, nil, testLogger),
		Files:         NewFileHandler(files, testLogger),
		Templates:     NewTemplateHandler(generator.NewEngine(catalog), nil, testLogger),
	})
	return mux
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func createConversation(t *testing.T, h http.Handler) chat.Conversation {
	t.Helper()
	rec := doRequest(t, h, http.MethodPost, "/conversations", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create conversation status = %d, body = %s", rec.Code, rec.Body)
	}
	var conv chat.Conversation
	decodeJSON(t, rec, &conv)
	return conv
}

// readSSE returns the data payloads of an event stream body
func readSSE(t *testing.T, body string) []chat.StreamEvent {
	t.Helper()
	var events []chat.StreamEvent
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		data, ok := strings.CutPrefix(scanner.Text(), "data: ")
		if !ok {
			continue
		}
		ev, err := chat.ParseStreamEvent([]byte(data))
		if err != nil {
			t.Fatalf("parse event %q: %v", data, err)
		}
		events = append(events, ev)
	}
	return events
}

type scriptedProvider struct {
	events []domainllm.StreamEvent
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) StreamText(ctx context.Context, req *domainllm.GenerateRequest) (<-chan domainllm.StreamEvent, error) {
	ch := make(chan domainllm.StreamEvent, len(p.events))
	for _, ev := range p.events {
		ch <- ev
	}
	close(ch)
	return ch, nil
}
