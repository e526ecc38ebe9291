package flop

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func (s *Source) Line(n int) (string, bool) {
	if s == nil {
		return "", false
	}
	idx := n - 1
	if idx < 0 || idx >= len(s.Lines) {
		return "", false
	}
	return strings.TrimSuffix(s.Lines[idx], "\r"), true
}
