package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// QuestionDocument maps a section name ("math", "english") to its questions in bank order.
type QuestionDocument map[string][]Question

type Question struct {
	Domain   string       `json:"domain"`
	Visuals  Visuals      `json:"visuals"`
	Question QuestionBody `json:"question"`
}

type QuestionBody struct {
	Paragraph     string  `json:"paragraph,omitempty"`
	Question      string  `json:"question"`
	Choices       Choices `json:"choices"`
	CorrectAnswer string  `json:"correct_answer"`
	Explanation   string  `json:"explanation"`
}

// HasParagraph reports whether the question carries a reading passage.
// The upstream bank writes the string "null" for missing passages.
func (b QuestionBody) HasParagraph() bool {
	return b.Paragraph != "" && b.Paragraph != "null"
}

type Choice struct {
	Label string
	Text  string
}

// Choices keeps the key order of the JSON object it was decoded from,
// which is also the order choices are shown in.
type Choices []Choice

func (c Choices) Lookup(label string) (string, bool) {
	for _, choice := range c {
		if choice.Label == label {
			return choice.Text, true
		}
	}
	return "", false
}

func (c *Choices) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("解析选项失败: %w", err)
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("选项必须是JSON对象, 实际为 %v", tok)
	}

	choices := Choices{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("解析选项标签失败: %w", err)
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("选项标签无效: %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("解析选项 %s 失败: %w", label, err)
		}
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			// numeric or other scalar choices are kept verbatim
			text = string(raw)
		}
		choices = append(choices, Choice{Label: label, Text: text})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("解析选项失败: %w", err)
	}

	*c = choices
	return nil
}

func (c Choices) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, choice := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(choice.Label)
		if err != nil {
			return nil, err
		}
		text, err := json.Marshal(choice.Text)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.Write(text)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

const (
	VisualTypeSVG   = "svg"
	VisualTypeImage = "image"
)

// Visuals is either absent, a bare string, or {"type": ..., "svg_content": ...}.
type Visuals struct {
	Type       string `json:"type"`
	SVGContent string `json:"svg_content"`
}

func (v Visuals) IsEmpty() bool {
	return v.Type == "null" || v.SVGContent == "" || v.SVGContent == "null"
}

func (v *Visuals) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*v = Visuals{}
		return nil
	case len(trimmed) > 0 && trimmed[0] == '"':
		var content string
		if err := json.Unmarshal(trimmed, &content); err != nil {
			return fmt.Errorf("解析图示失败: %w", err)
		}
		*v = Visuals{SVGContent: content}
		return nil
	}

	type plain Visuals
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return fmt.Errorf("解析图示失败: %w", err)
	}
	*v = Visuals(p)
	return nil
}
