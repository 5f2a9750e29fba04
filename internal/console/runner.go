package console

import (
	"OpenSAT-Quiz-Backend/internal/model"
	"OpenSAT-Quiz-Backend/internal/service"
	"OpenSAT-Quiz-Backend/internal/utils"
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const answerPrompt = "Enter your answer: "

// Runner asks a single question on a text terminal.
type Runner struct {
	quiz *service.QuizService
	in   *bufio.Reader
	out  io.Writer
}

func NewRunner(quiz *service.QuizService, in io.Reader, out io.Writer) *Runner {
	return &Runner{quiz: quiz, in: bufio.NewReader(in), out: out}
}

func (r *Runner) Run(ctx context.Context, section, domain string) error {
	section, err := r.quiz.ResolveSection(section, domain)
	if err != nil {
		return err
	}

	picked, err := r.quiz.PickQuestion(ctx, section, domain)
	if err != nil {
		return err
	}

	if err := r.render(picked); err != nil {
		return err
	}

	answer, err := r.readLine()
	if err != nil {
		return fmt.Errorf("读取答案失败: %w", err)
	}

	return r.report(service.CheckAnswer(picked.Question, answer))
}

func (r *Runner) render(picked *service.PickedQuestion) error {
	q := picked.Question
	blocks := []string{
		fmt.Sprintf("%d", picked.Ordinal),
		q.Domain,
		DescribeVisuals(q.Visuals),
	}
	if q.Question.HasParagraph() {
		blocks = append(blocks, q.Question.Paragraph)
	}
	blocks = append(blocks, q.Question.Question)

	var b strings.Builder
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n")
	for _, choice := range q.Question.Choices {
		fmt.Fprintf(&b, "%s) %s\n", choice.Label, choice.Text)
	}
	b.WriteString(answerPrompt)

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *Runner) report(result service.AnswerResult) error {
	if result.Correct {
		_, err := fmt.Fprintln(r.out, "Correct!")
		return err
	}
	_, err := fmt.Fprintf(r.out, "Incorrect!\nThe correct answer is %s\nThis is because %s\n", result.CorrectAnswer, result.Explanation)
	return err
}

// DescribeVisuals renders a question's figure as one line of text.
func DescribeVisuals(v model.Visuals) string {
	if v.IsEmpty() {
		return "(no visuals)"
	}
	if v.Type == model.VisualTypeImage || utils.IsImageURL(v.SVGContent) {
		return "[image] " + v.SVGContent
	}

	text, err := utils.ExtractText(v.SVGContent)
	if err != nil || text == "" {
		return "[figure]"
	}
	return "[figure] " + text
}
