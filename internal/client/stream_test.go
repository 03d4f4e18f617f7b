package client

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"webcraft/internal/domain/models/chat"
)

func TestReadEvents(t *testing.T) {
	body := ": keepalive\n\n" +
		"event: chunk\ndata: {\"type\":\"chunk\",\"content\":\"a\"}\n\n" +
		"event: chunk\ndata: {\"content\":\"b\"}\n\n" +
		"event: done\ndata: {\"type\":\"done\",\"done\":true,\"messageId\":\"m\"}\n\n" +
		"event: chunk\ndata: {\"type\":\"chunk\",\"content\":\"after\"}\n\n"

	var got []chat.StreamEventType
	err := readEvents(strings.NewReader(body), func(ev chat.StreamEvent) bool {
		got = append(got, ev.Type)
		return !ev.IsTerminal()
	})
	if err != nil {
		t.Fatalf("readEvents() error = %v", err)
	}

	want := []chat.StreamEventType{chat.StreamEventChunk, chat.StreamEventChunk, chat.StreamEventDone}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestReadEventsMalformed(t *testing.T) {
	err := readEvents(strings.NewReader("data: {not json}\n\n"), func(chat.StreamEvent) bool { return true })
	if err == nil {
		t.Error("readEvents() error = nil, want decode error")
	}
}

func TestReadEventsLongLine(t *testing.T) {
	long := strings.Repeat("x", 200<<10)
	body := "data: {\"type\":\"chunk\",\"content\":\"" + long + "\"}\n\n"

	var content string
	if err := readEvents(strings.NewReader(body), func(ev chat.StreamEvent) bool {
		content = ev.Content
		return true
	}); err != nil {
		t.Fatalf("readEvents() error = %v", err)
	}
	if len(content) != len(long) {
		t.Errorf("content length = %d, want %d", len(content), len(long))
	}
}

func TestReveal(t *testing.T) {
	tests := []struct {
		name string
		text string
		step int
		want []string
	}{
		{"steps", "abcdefg", 3, []string{"abc", "abcdef", "abcdefg"}},
		{"runes", "héllo", 2, []string{"hé", "héll", "héllo"}},
		{"no step", "abc", 0, []string{"abc"}},
		{"empty", "", 5, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			if err := Reveal(context.Background(), tt.text, tt.step, 0, func(s string) { got = append(got, s) }); err != nil {
				t.Fatalf("Reveal() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("updates = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRevealCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := Reveal(ctx, strings.Repeat("a", 100), 1, time.Millisecond, func(string) {
		calls++
		if calls == 3 {
			cancel()
		}
	})

	if err != context.Canceled {
		t.Errorf("Reveal() error = %v, want context.Canceled", err)
	}
	if calls != 3 {
		t.Errorf("updates = %d, want 3", calls)
	}
}
