package client

import (
	"OpenSAT-Quiz-Backend/internal/model"
	"OpenSAT-Quiz-Backend/internal/utils"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"
)

// DefaultBankURL is the public question bank the OpenSAT practice site reads from.
const DefaultBankURL = "https://api.jsonsilo.com/public/942c3c3b-3a0c-4be3-81c2-12029def19f5"

const defaultTimeout = 15 * time.Second

var (
	ErrFetchFailed       = errors.New("question bank request failed")
	ErrUnexpectedStatus  = errors.New("question bank returned unexpected status")
	ErrMalformedDocument = errors.New("question bank document is malformed")
)

type OpenSATClient struct {
	BankURL    string
	HTTPClient *http.Client
}

func NewOpenSATClient(bankURL string, timeoutSec int) *OpenSATClient {
	if bankURL == "" {
		bankURL = DefaultBankURL
	}
	timeout := defaultTimeout
	if timeoutSec > 0 {
		timeout = time.Duration(timeoutSec) * time.Second
	}
	return &OpenSATClient{
		BankURL: bankURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func setCommonHeaders(req *http.Request, requestID string) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", "OpenSAT-Quiz/1.0")
	req.Header.Set("X-Request-Id", requestID)
}

// FetchDocument downloads and decodes the whole question bank. Nothing is cached.
func (c *OpenSATClient) FetchDocument(ctx context.Context) (model.QuestionDocument, error) {
	requestID, err := utils.GenerateRequestID()
	if err != nil {
		return nil, fmt.Errorf("生成请求ID失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BankURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建题库请求失败: %w", err)
	}
	setCommonHeaders(req, requestID)

	log.Printf("[OpenSAT] 正在获取题库 (RequestID: %s)", requestID)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			log.Printf("[OpenSAT] 获取题库超时 (配置的超时时间为 %s)", c.HTTPClient.Timeout.String())
		}
		return nil, fmt.Errorf("获取题库请求失败: %w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[OpenSAT] 题库返回非200状态。状态码: %s, 响应体: %s", resp.Status, string(bodyBytes))
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取题库响应体失败: %w", err)
	}
	log.Printf("[OpenSAT] 收到题库响应 (Size: %d bytes, RequestID: %s)", len(bodyBytes), requestID)

	return DecodeDocument(bodyBytes)
}

// DecodeDocument maps raw bank JSON onto the typed model. Any shape mismatch
// is reported as ErrMalformedDocument.
func DecodeDocument(data []byte) (model.QuestionDocument, error) {
	var doc model.QuestionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrMalformedDocument)
	}
	return doc, nil
}
