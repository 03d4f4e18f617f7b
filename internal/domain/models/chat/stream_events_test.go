package chat

import (
	"strings"
	"testing"
)

func TestFormatSSE(t *testing.T) {
	tests := []struct {
		name  string
		event StreamEvent
		want  string
	}{
		{
			name:  "chunk",
			event: NewChunkEvent("hi"),
			want:  "event: chunk\ndata: {\"type\":\"chunk\",\"content\":\"hi\"}\n\n",
		},
		{
			name:  "fallback",
			event: NewFallbackEvent("make a form"),
			want:  "event: fallback\ndata: {\"type\":\"fallback\",\"useLocalEngine\":true,\"userMessage\":\"make a form\"}\n\n",
		},
		{
			name:  "done",
			event: NewDoneEvent("m1"),
			want:  "event: done\ndata: {\"type\":\"done\",\"done\":true,\"messageId\":\"m1\"}\n\n",
		},
		{
			name:  "error",
			event: NewErrorEvent("boom"),
			want:  "event: error\ndata: {\"type\":\"error\",\"error\":\"boom\"}\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatSSE(tt.event)
			if err != nil {
				t.Fatalf("FormatSSE() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatSSE() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStreamEvent(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantType StreamEventType
		wantErr  bool
	}{
		{"typed chunk", `{"type":"chunk","content":"a"}`, StreamEventChunk, false},
		{"typed done", `{"type":"done","done":true,"messageId":"m"}`, StreamEventDone, false},
		{"legacy fallback", `{"useLocalEngine":true,"userMessage":"x"}`, StreamEventFallback, false},
		{"legacy done", `{"done":true}`, StreamEventDone, false},
		{"legacy error", `{"error":"bad"}`, StreamEventError, false},
		{"legacy content", `{"content":"text"}`, StreamEventChunk, false},
		{"invalid json", `{"type":`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStreamEvent([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStreamEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got.Type != tt.wantType {
				t.Errorf("ParseStreamEvent().Type = %q, want %q", got.Type, tt.wantType)
			}
		})
	}
}

func TestFormatThenParse(t *testing.T) {
	frame, err := FormatSSE(NewFallbackEvent("hello"))
	if err != nil {
		t.Fatalf("FormatSSE() error = %v", err)
	}

	var data string
	for _, line := range strings.Split(frame, "\n") {
		if rest, ok := strings.CutPrefix(line, "data: "); ok {
			data = rest
		}
	}

	event, err := ParseStreamEvent([]byte(data))
	if err != nil {
		t.Fatalf("ParseStreamEvent() error = %v", err)
	}
	if !event.IsTerminal() || event.UserMessage != "hello" || !event.UseLocalEngine {
		t.Errorf("parsed event = %+v", event)
	}
	if NewChunkEvent("x").IsTerminal() {
		t.Errorf("chunk event reported terminal")
	}
}
