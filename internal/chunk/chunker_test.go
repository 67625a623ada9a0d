package chunk

import (
	"strings"
	"testing"
)

func TestSplit_UnderLimitIsIdentity(t *testing.T) {
	c := NewChunker(20000)
	text := strings.Repeat("a", 10000)

	chunks := c.Split("doc-1", text)
	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != text {
		t.Error("Expected single chunk equal to the original text")
	}
	if chunks[0].DocumentID != "doc-1" || chunks[0].Ordinal != 0 {
		t.Errorf("Unexpected chunk metadata: %+v", chunks[0])
	}
}

func TestSplit_ExactLimitIsIdentity(t *testing.T) {
	c := NewChunker(100)
	text := strings.Repeat("x", 100)

	chunks := c.Split("doc", text)
	if len(chunks) != 1 || chunks[0].Text != text {
		t.Errorf("Expected identity for text at the limit, got %d chunks", len(chunks))
	}
}

func TestSplit_UnbrokenTextCeilAndReconstruct(t *testing.T) {
	cases := []struct {
		length int
		size   int
		want   int // ceil(length/size)
	}{
		{250, 100, 3},
		{300, 100, 3},
		{301, 100, 4},
		{1, 100, 1},
	}

	for _, tc := range cases {
		c := NewChunker(tc.size)
		text := strings.Repeat("z", tc.length)

		chunks := c.Split("doc", text)
		if len(chunks) != tc.want {
			t.Errorf("length=%d size=%d: expected %d chunks, got %d",
				tc.length, tc.size, tc.want, len(chunks))
		}

		var rebuilt strings.Builder
		for i, ch := range chunks {
			if ch.Ordinal != i {
				t.Errorf("Expected ordinal %d, got %d", i, ch.Ordinal)
			}
			if len(ch.Text) > tc.size {
				t.Errorf("Chunk %d exceeds size limit: %d > %d", i, len(ch.Text), tc.size)
			}
			rebuilt.WriteString(ch.Text)
		}
		if rebuilt.String() != text {
			t.Errorf("length=%d size=%d: concatenation does not reconstruct the input", tc.length, tc.size)
		}
	}
}

func TestSplit_ParagraphBoundaries(t *testing.T) {
	c := NewChunker(25)
	text := "first paragraph\nsecond one\nthird paragraph here"

	chunks := c.Split("doc", text)
	if len(chunks) < 2 {
		t.Fatalf("Expected multiple chunks, got %d", len(chunks))
	}
	for i, ch := range chunks {
		if len(ch.Text) > 25 {
			t.Errorf("Chunk %d exceeds limit: %q", i, ch.Text)
		}
		if strings.HasPrefix(ch.Text, "\n") || strings.HasSuffix(ch.Text, "\n") {
			t.Errorf("Chunk %d has dangling separator: %q", i, ch.Text)
		}
	}

	// No paragraph may be split when it fits the limit on its own.
	joined := strings.Join([]string{chunks[0].Text, chunks[1].Text}, "\n")
	if !strings.HasPrefix(text, chunks[0].Text) {
		t.Errorf("First chunk is not a prefix of the input: %q", chunks[0].Text)
	}
	_ = joined
}

func TestSplit_OversizedParagraphHardTruncates(t *testing.T) {
	c := NewChunker(10)
	text := "short\n" + strings.Repeat("y", 25) + "\nend"

	chunks := c.Split("doc", text)
	for i, ch := range chunks {
		if len(ch.Text) > 10 {
			t.Errorf("Chunk %d exceeds limit: %q", i, ch.Text)
		}
	}

	var all strings.Builder
	for _, ch := range chunks {
		all.WriteString(ch.Text)
	}
	if !strings.Contains(all.String(), strings.Repeat("y", 25)) {
		t.Error("Expected oversized paragraph to be fully covered by chunks")
	}
}

func TestSplit_NoOverlap(t *testing.T) {
	c := NewChunker(50)
	text := strings.Repeat("paragraph text\n", 20)

	chunks := c.Split("doc", text)
	total := 0
	for _, ch := range chunks {
		total += len(ch.Text)
	}
	// Overlapping chunks would make the total exceed the input length.
	if total > len(text) {
		t.Errorf("Chunks overlap: total %d > input %d", total, len(text))
	}
}
