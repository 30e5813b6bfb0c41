package text

import (
	"strings"
)

type Splitter struct {
	ChunkSize int

	Separators []string
}

func NewSplitter() Splitter {
	return Splitter{
		ChunkSize: 1500,

		Separators: []string{
			"\n\n",
			"\n",
			". ",
			" ",
		},
	}
}

// Split cuts text into chunks of at most ChunkSize bytes, preferring the
// earliest separator level that keeps chunks within the limit.
func (s Splitter) Split(text string) []string {
	text = strings.TrimSpace(text)

	if text == "" {
		return nil
	}

	if len(text) <= s.ChunkSize {
		return []string{text}
	}

	return s.split(text, s.Separators)
}

func (s Splitter) split(text string, separators []string) []string {
	if len(separators) == 0 {
		return s.cut(text)
	}

	parts := strings.SplitAfter(text, separators[0])

	var chunks []string
	var current strings.Builder

	flush := func() {
		if chunk := strings.TrimSpace(current.String()); chunk != "" {
			chunks = append(chunks, chunk)
		}

		current.Reset()
	}

	for _, part := range parts {
		if len(part) > s.ChunkSize {
			flush()
			chunks = append(chunks, s.split(part, separators[1:])...)

			continue
		}

		if current.Len()+len(part) > s.ChunkSize {
			flush()
		}

		current.WriteString(part)
	}

	flush()

	return chunks
}

// cut falls back to fixed-size chunks on rune boundaries.
func (s Splitter) cut(text string) []string {
	var chunks []string

	runes := []rune(text)

	for len(runes) > 0 {
		size := min(len(runes), s.ChunkSize)

		chunk := strings.TrimSpace(string(runes[:size]))

		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		runes = runes[size:]
	}

	return chunks
}
