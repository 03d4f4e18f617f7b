package client

import (
	"bufio"
	"io"
	"strings"

	"webcraft/internal/domain/models/chat"
)

const maxLineSize = 1 << 20

// readEvents scans an SSE body and calls fn for each decoded data line.
// Event names, comments and blank lines are ignored. Scanning stops when fn
// returns false. A malformed payload ends the scan with its decode error.
func readEvents(r io.Reader, fn func(chat.StreamEvent) bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		data, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}

		event, err := chat.ParseStreamEvent([]byte(data))
		if err != nil {
			return err
		}
		if !fn(event) {
			return nil
		}
	}
	return scanner.Err()
}
