package model

import (
	"encoding/json"
	"testing"
)

func TestChoicesKeepObjectOrder(t *testing.T) {
	var c Choices
	if err := json.Unmarshal([]byte(`{"D":"4","B":"2","A":"1","C":"3"}`), &c); err != nil {
		t.Fatal(err)
	}
	want := []string{"D", "B", "A", "C"}
	if len(c) != len(want) {
		t.Fatalf("got %d choices, want %d", len(c), len(want))
	}
	for i, label := range want {
		if c[i].Label != label {
			t.Errorf("position %d: got label %q, want %q", i, c[i].Label, label)
		}
	}

	out, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"D":"4","B":"2","A":"1","C":"3"}` {
		t.Errorf("re-encoded choices lost order: %s", out)
	}
}

func TestChoicesNonStringValues(t *testing.T) {
	var c Choices
	if err := json.Unmarshal([]byte(`{"A": 12, "B": "twelve"}`), &c); err != nil {
		t.Fatal(err)
	}
	if text, _ := c.Lookup("A"); text != "12" {
		t.Errorf("numeric choice: got %q", text)
	}
	if _, ok := c.Lookup("Z"); ok {
		t.Error("lookup of unknown label should fail")
	}
}

func TestChoicesRejectsArray(t *testing.T) {
	var c Choices
	if err := json.Unmarshal([]byte(`["A","B"]`), &c); err == nil {
		t.Fatal("expected error for array choices")
	}
}

func TestVisualsDecoding(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  Visuals
		empty bool
	}{
		{"null", `null`, Visuals{}, true},
		{"empty string", `""`, Visuals{}, true},
		{"plain string", `"<svg><text>y=2x</text></svg>"`, Visuals{SVGContent: "<svg><text>y=2x</text></svg>"}, false},
		{"null sentinel", `{"type":"null","svg_content":"null"}`, Visuals{Type: "null", SVGContent: "null"}, true},
		{"image", `{"type":"image","svg_content":"https://example.com/a.png"}`, Visuals{Type: "image", SVGContent: "https://example.com/a.png"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v Visuals
			if err := json.Unmarshal([]byte(tc.raw), &v); err != nil {
				t.Fatal(err)
			}
			if v != tc.want {
				t.Errorf("got %+v, want %+v", v, tc.want)
			}
			if v.IsEmpty() != tc.empty {
				t.Errorf("IsEmpty: got %t, want %t", v.IsEmpty(), tc.empty)
			}
		})
	}
}

func TestQuestionDocumentDecoding(t *testing.T) {
	raw := `{"math": [{"domain":"Algebra", "question":{"question":"2x=4, x=?","choices":{"A":"1","B":"2","C":"3","D":"4"},"correct_answer":"B","explanation":"Divide both sides by 2."}}]}`
	var doc QuestionDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatal(err)
	}
	q := doc["math"][0]
	if q.Domain != "Algebra" || q.Question.CorrectAnswer != "B" || len(q.Question.Choices) != 4 {
		t.Errorf("unexpected question: %+v", q)
	}
	if !q.Visuals.IsEmpty() {
		t.Errorf("missing visuals should be empty, got %+v", q.Visuals)
	}
	if q.Question.HasParagraph() {
		t.Error("missing paragraph should not count as a paragraph")
	}
}

func TestHasParagraph(t *testing.T) {
	if (QuestionBody{Paragraph: "null"}).HasParagraph() {
		t.Error(`"null" paragraph should be treated as absent`)
	}
	if !(QuestionBody{Paragraph: "The passage."}).HasParagraph() {
		t.Error("real paragraph should be present")
	}
}
