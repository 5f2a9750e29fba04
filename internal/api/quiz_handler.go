package api

import (
	"OpenSAT-Quiz-Backend/internal/client"
	"OpenSAT-Quiz-Backend/internal/model"
	"OpenSAT-Quiz-Backend/internal/repository"
	"OpenSAT-Quiz-Backend/internal/service"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type SubmitAnswerRequest struct {
	Domain string `json:"domain" binding:"required"`
	Answer string `json:"answer"`
}

// QuestionView is a question as shown before answering: no answer, no explanation.
type QuestionView struct {
	Section   string        `json:"section"`
	Ordinal   int           `json:"ordinal"`
	Domain    string        `json:"domain"`
	Visuals   model.Visuals `json:"visuals"`
	Paragraph string        `json:"paragraph,omitempty"`
	Question  string        `json:"question"`
	Choices   model.Choices `json:"choices"`
}

func newQuestionView(section string, ordinal int, q model.Question) QuestionView {
	view := QuestionView{
		Section:  section,
		Ordinal:  ordinal,
		Domain:   q.Domain,
		Visuals:  q.Visuals,
		Question: q.Question.Question,
		Choices:  q.Question.Choices,
	}
	if q.Question.HasParagraph() {
		view.Paragraph = q.Question.Paragraph
	}
	return view
}

type QuizHandler struct {
	bankService *service.QuestionBankService
	quizService *service.QuizService
	domainRepo  *repository.DomainRepository
}

func NewQuizHandler(bankService *service.QuestionBankService, quizService *service.QuizService, domainRepo *repository.DomainRepository) *QuizHandler {
	return &QuizHandler{bankService: bankService, quizService: quizService, domainRepo: domainRepo}
}

func (h *QuizHandler) handleServiceError(c *gin.Context, err error, contextMsg string) {
	switch {
	case errors.Is(err, service.ErrSectionNotFound),
		errors.Is(err, service.ErrOrdinalNotFound),
		errors.Is(err, service.ErrNoQuestions):
		c.JSON(http.StatusNotFound, gin.H{"error": contextMsg, "details": err.Error()})
	case errors.Is(err, client.ErrFetchFailed),
		errors.Is(err, client.ErrUnexpectedStatus),
		errors.Is(err, client.ErrMalformedDocument):
		c.JSON(http.StatusBadGateway, gin.H{"error": contextMsg, "details": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": contextMsg, "details": err.Error()})
	}
}

func requireDomain(c *gin.Context) (string, bool) {
	domain := c.Query("domain")
	if domain == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain query parameter is required"})
		return "", false
	}
	return domain, true
}

func parseOrdinal(c *gin.Context) (int, bool) {
	ordinal, err := strconv.Atoi(c.Param("ordinal"))
	if err != nil || ordinal < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ordinal must be a positive integer"})
		return 0, false
	}
	return ordinal, true
}

func (h *QuizHandler) ListSectionsHandler(c *gin.Context) {
	sections, err := h.bankService.ListSections(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "获取分区列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

func (h *QuizHandler) CatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": h.domainRepo.SectionToDomains})
}

func (h *QuizHandler) ListDomainsHandler(c *gin.Context) {
	section := c.Param("section")
	domains, err := h.bankService.ListDomains(c.Request.Context(), section)
	if err != nil {
		h.handleServiceError(c, err, "获取领域列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section, "domains": domains})
}

func (h *QuizHandler) ListOrdinalsHandler(c *gin.Context) {
	domain, ok := requireDomain(c)
	if !ok {
		return
	}
	section := c.Param("section")
	ordinals, err := h.bankService.ListMatchingOrdinals(c.Request.Context(), section, domain)
	if err != nil {
		h.handleServiceError(c, err, "获取题号列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section, "domain": domain, "ordinals": ordinals})
}

func (h *QuizHandler) GetQuestionHandler(c *gin.Context) {
	domain, ok := requireDomain(c)
	if !ok {
		return
	}
	ordinal, ok := parseOrdinal(c)
	if !ok {
		return
	}
	section := c.Param("section")
	q, err := h.bankService.GetByOrdinal(c.Request.Context(), ordinal, section, domain)
	if err != nil {
		h.handleServiceError(c, err, "获取题目失败")
		return
	}
	c.JSON(http.StatusOK, newQuestionView(section, ordinal, *q))
}

func (h *QuizHandler) RandomQuestionHandler(c *gin.Context) {
	domain, ok := requireDomain(c)
	if !ok {
		return
	}
	picked, err := h.quizService.PickQuestion(c.Request.Context(), c.Param("section"), domain)
	if err != nil {
		h.handleServiceError(c, err, "随机抽题失败")
		return
	}
	c.JSON(http.StatusOK, newQuestionView(picked.Section, picked.Ordinal, picked.Question))
}

func (h *QuizHandler) SubmitAnswerHandler(c *gin.Context) {
	ordinal, ok := parseOrdinal(c)
	if !ok {
		return
	}
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数无效: " + err.Error()})
		return
	}

	result, err := h.quizService.SubmitAnswer(c.Request.Context(), ordinal, c.Param("section"), req.Domain, req.Answer)
	if err != nil {
		h.handleServiceError(c, err, "提交答案失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"correct":        result.Correct,
		"answer":         result.Given,
		"correct_answer": result.CorrectAnswer,
		"correct_text":   result.CorrectText,
		"explanation":    result.Explanation,
	})
}

func (h *QuizHandler) DailyQuestionHandler(c *gin.Context) {
	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
			return
		}
		day = parsed
	}

	pick, err := h.bankService.DailyQuestion(c.Request.Context(), day)
	if err != nil {
		h.handleServiceError(c, err, "获取每日一题失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":     pick.Date,
		"question": newQuestionView(pick.Section, pick.Ordinal, pick.Question),
	})
}
