package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"webcraft/internal/config"
	"webcraft/internal/domain"
	chatSvc "webcraft/internal/domain/services/chat"
)

func TestSaveFilesSkipsIncompleteEntries(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	saved, err := s.files.SaveFiles(ctx, conv.ID, &chatSvc.BulkSaveFilesRequest{Files: []chatSvc.SaveFileRequest{
		{Path: "index.html", Content: "<p>hi</p>"},
		{Path: "", Content: "orphan"},
		{Path: "empty.css", Content: ""},
		{Path: "./js/app.js", Content: "run()"},
	}})
	if err != nil {
		t.Fatalf("SaveFiles() error = %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved %d files, want 2", len(saved))
	}
	if saved[0].Language != "html" || saved[1].Path != "js/app.js" || saved[1].Language != "javascript" {
		t.Errorf("saved = %+v", saved)
	}

	list, err := s.files.ListFiles(ctx, conv.ID)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(list) != 2 {
		t.Errorf("ListFiles() = %d files, want 2", len(list))
	}
}

func TestSaveFilesLimitsAndEmpty(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	tooMany := make([]chatSvc.SaveFileRequest, config.MaxBulkFiles+1)
	if _, err := s.files.SaveFiles(ctx, conv.ID, &chatSvc.BulkSaveFilesRequest{Files: tooMany}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("SaveFiles() over limit error = %v, want ErrValidation", err)
	}

	saved, err := s.files.SaveFiles(ctx, conv.ID, &chatSvc.BulkSaveFilesRequest{})
	if err != nil {
		t.Fatalf("SaveFiles() empty error = %v", err)
	}
	if saved == nil || len(saved) != 0 {
		t.Errorf("SaveFiles() empty = %v, want empty non-nil slice", saved)
	}

	if _, err := s.files.SaveFiles(ctx, "missing", &chatSvc.BulkSaveFilesRequest{}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("SaveFiles() missing conversation error = %v, want ErrNotFound", err)
	}
}

func TestSaveFileUpsertsByPath(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	first, err := s.files.SaveFile(ctx, conv.ID, &chatSvc.SaveFileRequest{Path: "styles.css", Content: "a{}"})
	if err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	second, err := s.files.SaveFile(ctx, conv.ID, &chatSvc.SaveFileRequest{Path: "styles.css", Content: "b{}"})
	if err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("re-saved ID = %q, want %q", second.ID, first.ID)
	}

	if _, err := s.files.SaveFile(ctx, conv.ID, &chatSvc.SaveFileRequest{Path: " ", Content: "x"}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("SaveFile() blank path error = %v, want ErrValidation", err)
	}
}

func TestUpdateAndDeleteFile(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	file, err := s.files.SaveFile(ctx, conv.ID, &chatSvc.SaveFileRequest{Path: "index.html", Content: "<p>1</p>"})
	if err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	if _, err := s.files.UpdateFile(ctx, file.ID, &chatSvc.UpdateFileRequest{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("UpdateFile() without content error = %v, want ErrValidation", err)
	}

	updated, err := s.files.UpdateFile(ctx, file.ID, &chatSvc.UpdateFileRequest{Content: strPtr("<p>2</p>")})
	if err != nil {
		t.Fatalf("UpdateFile() error = %v", err)
	}
	if updated.Content != "<p>2</p>" || updated.Path != "index.html" {
		t.Errorf("updated = %+v", updated)
	}

	if err := s.files.DeleteFile(ctx, file.ID); err != nil {
		t.Fatalf("DeleteFile() error = %v", err)
	}
	if _, err := s.files.UpdateFile(ctx, file.ID, &chatSvc.UpdateFileRequest{Content: strPtr("x")}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("UpdateFile() after delete error = %v, want ErrNotFound", err)
	}
	if err := s.files.DeleteFile(ctx, file.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second DeleteFile() error = %v, want ErrNotFound", err)
	}
}

func TestPreview(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	conv := s.newConversation(t, "")

	if _, err := s.files.Preview(ctx, conv.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Preview() without files error = %v, want ErrNotFound", err)
	}

	_, err := s.files.SaveFiles(ctx, conv.ID, &chatSvc.BulkSaveFilesRequest{Files: []chatSvc.SaveFileRequest{
		{Path: "styles.css", Content: "body{color:red}"},
		{Path: "index.html", Content: "<html><head></head><body><p>hi</p></body></html>"},
	}})
	if err != nil {
		t.Fatalf("SaveFiles() error = %v", err)
	}

	doc, err := s.files.Preview(ctx, conv.ID)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if !strings.Contains(doc, "<style>\nbody{color:red}\n</style></head>") {
		t.Errorf("Preview() = %s", doc)
	}

	if _, err := s.files.Preview(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Preview() missing conversation error = %v, want ErrNotFound", err)
	}
}
