package service

import (
	"OpenSAT-Quiz-Backend/internal/model"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"
)

//go:generate mockgen -source=question_bank_service.go -destination=mocks/mock_document_source.go -package=mocks

var (
	ErrSectionNotFound = errors.New("section not found in question bank")
	ErrOrdinalNotFound = errors.New("ordinal not found for domain")
	ErrNoQuestions     = errors.New("no questions available for this domain")
)

// DocumentSource yields the current question bank. Implementations must not cache.
type DocumentSource interface {
	FetchDocument(ctx context.Context) (model.QuestionDocument, error)
}

type QuestionBankService struct {
	source DocumentSource
}

func NewQuestionBankService(source DocumentSource) *QuestionBankService {
	return &QuestionBankService{source: source}
}

func (s *QuestionBankService) fetchSection(ctx context.Context, section string) ([]model.Question, error) {
	doc, err := s.source.FetchDocument(ctx)
	if err != nil {
		return nil, err
	}
	questions, ok := doc[section]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, section)
	}
	return questions, nil
}

// matchingOrdinals returns the 1-based positions within the unfiltered section
// whose domain equals domain.
func matchingOrdinals(questions []model.Question, domain string) []int {
	ordinals := []int{}
	for i, q := range questions {
		if q.Domain == domain {
			ordinals = append(ordinals, i+1)
		}
	}
	return ordinals
}

func (s *QuestionBankService) ListMatchingOrdinals(ctx context.Context, section, domain string) ([]int, error) {
	questions, err := s.fetchSection(ctx, section)
	if err != nil {
		return nil, err
	}
	ordinals := matchingOrdinals(questions, domain)
	log.Printf("[QuestionBank] 分区 %s 领域 %s 共匹配 %d 题", section, domain, len(ordinals))
	return ordinals, nil
}

// GetByOrdinal validates ordinal against the domain's ordinal set and returns
// the entry at that absolute position in the section.
func (s *QuestionBankService) GetByOrdinal(ctx context.Context, ordinal int, section, domain string) (*model.Question, error) {
	questions, err := s.fetchSection(ctx, section)
	if err != nil {
		return nil, err
	}

	found := false
	for _, o := range matchingOrdinals(questions, domain) {
		if o == ordinal {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: question number %d not found in the specified domain %s", ErrOrdinalNotFound, ordinal, domain)
	}

	q := questions[ordinal-1]
	return &q, nil
}

func (s *QuestionBankService) ListSections(ctx context.Context) ([]string, error) {
	doc, err := s.source.FetchDocument(ctx)
	if err != nil {
		return nil, err
	}
	sections := make([]string, 0, len(doc))
	for section := range doc {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	return sections, nil
}

// ListDomains returns the distinct domains of a section in order of first appearance.
func (s *QuestionBankService) ListDomains(ctx context.Context, section string) ([]string, error) {
	questions, err := s.fetchSection(ctx, section)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	domains := []string{}
	for _, q := range questions {
		if !seen[q.Domain] {
			seen[q.Domain] = true
			domains = append(domains, q.Domain)
		}
	}
	return domains, nil
}

type DailyPick struct {
	Date     string
	Section  string
	Ordinal  int
	Question model.Question
}

// DailyQuestion picks the same question for everyone on a given calendar day.
func (s *QuestionBankService) DailyQuestion(ctx context.Context, day time.Time) (*DailyPick, error) {
	doc, err := s.source.FetchDocument(ctx)
	if err != nil {
		return nil, err
	}

	date := day.Format("2006-01-02")
	hash := dayHash(date)
	section := "english"
	if hash%2 == 0 {
		section = "math"
	}

	questions, ok := doc[section]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, section)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: section %s is empty", ErrNoQuestions, section)
	}

	index := int(hash % int64(len(questions)))
	log.Printf("[QuestionBank] %s 的每日一题: 分区 %s 第 %d 题", date, section, index+1)
	return &DailyPick{
		Date:     date,
		Section:  section,
		Ordinal:  index + 1,
		Question: questions[index],
	}, nil
}

// dayHash is the 32-bit h*31+c string hash used by the practice site, made non-negative.
func dayHash(s string) int64 {
	var h int32
	for _, c := range s {
		h = h*31 + int32(c)
	}
	if h < 0 {
		return -int64(h)
	}
	return int64(h)
}
