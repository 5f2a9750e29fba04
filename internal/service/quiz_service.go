package service

import (
	"OpenSAT-Quiz-Backend/internal/model"
	"OpenSAT-Quiz-Backend/internal/repository"
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
)

type QuizService struct {
	bank       *QuestionBankService
	domainRepo *repository.DomainRepository
	rng        *rand.Rand
}

// NewQuizService wires the quiz flow. A nil rng falls back to the package-level generator.
func NewQuizService(bank *QuestionBankService, domainRepo *repository.DomainRepository, rng *rand.Rand) *QuizService {
	return &QuizService{
		bank:       bank,
		domainRepo: domainRepo,
		rng:        rng,
	}
}

type PickedQuestion struct {
	Section  string
	Ordinal  int
	Question model.Question
}

type AnswerResult struct {
	Correct       bool
	Given         string
	CorrectAnswer string
	CorrectText   string
	Explanation   string
}

// ResolveSection returns section unchanged when set, otherwise the section
// the domain catalog assigns to domain.
func (s *QuizService) ResolveSection(section, domain string) (string, error) {
	if section != "" {
		return section, nil
	}
	if s.domainRepo != nil {
		if owner, ok := s.domainRepo.FindSectionByDomain(domain); ok {
			return owner, nil
		}
	}
	return "", fmt.Errorf("%w: no section given and domain %q is not in the catalog", ErrSectionNotFound, domain)
}

func (s *QuizService) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}

// PickQuestion chooses one question of the domain uniformly at random.
func (s *QuizService) PickQuestion(ctx context.Context, section, domain string) (*PickedQuestion, error) {
	ordinals, err := s.bank.ListMatchingOrdinals(ctx, section, domain)
	if err != nil {
		return nil, err
	}
	if len(ordinals) == 0 {
		return nil, fmt.Errorf("%w: %s / %s", ErrNoQuestions, section, domain)
	}

	ordinal := ordinals[s.intN(len(ordinals))]
	log.Printf("[Quiz] 随机选中 %s / %s 第 %d 题", section, domain, ordinal)

	q, err := s.bank.GetByOrdinal(ctx, ordinal, section, domain)
	if err != nil {
		return nil, err
	}
	return &PickedQuestion{Section: section, Ordinal: ordinal, Question: *q}, nil
}

// CheckAnswer compares the trimmed answer with the correct label, ignoring case.
func CheckAnswer(q model.Question, answer string) AnswerResult {
	given := strings.TrimSpace(answer)
	correctLabel := q.Question.CorrectAnswer
	correctText, _ := q.Question.Choices.Lookup(correctLabel)
	return AnswerResult{
		Correct:       strings.EqualFold(given, strings.TrimSpace(correctLabel)),
		Given:         given,
		CorrectAnswer: correctLabel,
		CorrectText:   correctText,
		Explanation:   q.Question.Explanation,
	}
}

// SubmitAnswer looks the question up again and grades answer against it.
func (s *QuizService) SubmitAnswer(ctx context.Context, ordinal int, section, domain, answer string) (*AnswerResult, error) {
	q, err := s.bank.GetByOrdinal(ctx, ordinal, section, domain)
	if err != nil {
		return nil, err
	}
	result := CheckAnswer(*q, answer)
	log.Printf("[Quiz] %s / %s 第 %d 题作答 %q, 正确: %t", section, domain, ordinal, result.Given, result.Correct)
	return &result, nil
}
