package scripture

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"thelight-api/internal/config"
	apperrors "thelight-api/pkg/errors"
	"thelight-api/pkg/metrics"
	"thelight-api/pkg/tracer"
)

const (
	FormatJSON = "json"
	FormatHTML = "html"

	maxBodyBytes = 4 << 20
)

// OSISResolver 将书名解析为 OSIS 编号，用于 {osis} 占位符
type OSISResolver func(book string) (string, bool)

// HTTPSource 从 HTTP 经文接口获取章节文本。
// JSON 响应按 gjson 路径提取，HTML 响应按 CSS 选择器提取并拼接。
type HTTPSource struct {
	client      *http.Client
	urlTemplate string
	format      string
	jsonPath    string
	selector    string
	osis        OSISResolver
}

// NewHTTPSource 创建 HTTP 经文来源
func NewHTTPSource(cfg *config.ScriptureConfig, osis OSISResolver) *HTTPSource {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format == "" {
		format = FormatJSON
	}
	jsonPath := cfg.JSONPath
	if jsonPath == "" {
		jsonPath = "text"
	}
	selector := cfg.HTMLSelector
	if selector == "" {
		selector = ".verse"
	}
	return &HTTPSource{
		client:      &http.Client{Timeout: cfg.Timeout},
		urlTemplate: cfg.URLTemplate,
		format:      format,
		jsonPath:    jsonPath,
		selector:    selector,
		osis:        osis,
	}
}

// ChapterText 获取章节文本；404 或提取结果为空时返回 ErrChapterNotFound
func (s *HTTPSource) ChapterText(ctx context.Context, book string, chapter int) (_ string, err error) {
	ctx, span := tracer.Start(ctx, "scripture.HTTPSource.ChapterText",
		trace.WithAttributes(
			attribute.String("scripture.book", book),
			attribute.Int("scripture.chapter", chapter),
		),
	)
	defer func() { tracer.End(span, err) }()

	text, err := s.fetch(ctx, book, chapter)
	metrics.ScriptureFetchTotal.WithLabelValues("http", fetchStatus(err)).Inc()
	return text, err
}

func (s *HTTPSource) fetch(ctx context.Context, book string, chapter int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.buildURL(book, chapter), nil)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeScriptureSourceError, "invalid scripture url")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeScriptureSourceError, "scripture request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", notFound(book, chapter)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.Newf(apperrors.CodeScriptureSourceError, "scripture source returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeScriptureSourceError, "failed to read scripture response")
	}

	var text string
	switch s.format {
	case FormatHTML:
		text, err = extractHTML(body, s.selector)
	default:
		text = extractJSON(body, s.jsonPath)
	}
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", notFound(book, chapter)
	}
	return text, nil
}

func (s *HTTPSource) buildURL(book string, chapter int) string {
	osis := book
	if s.osis != nil {
		if id, ok := s.osis(book); ok {
			osis = id
		}
	}
	return strings.NewReplacer(
		"{book}", url.PathEscape(book),
		"{chapter}", strconv.Itoa(chapter),
		"{osis}", url.PathEscape(osis),
	).Replace(s.urlTemplate)
}

// extractJSON 按 gjson 路径取文本；路径指向数组时拼接各元素
func extractJSON(body []byte, path string) string {
	res := gjson.GetBytes(body, path)
	if !res.Exists() {
		return ""
	}
	if res.IsArray() {
		parts := make([]string, 0, len(res.Array()))
		for _, item := range res.Array() {
			if t := strings.TrimSpace(item.String()); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, " ")
	}
	return strings.TrimSpace(res.String())
}

func extractHTML(body []byte, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeScriptureSourceError, "failed to parse scripture html")
	}
	var parts []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if t := strings.Join(strings.Fields(sel.Text()), " "); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " "), nil
}

func notFound(book string, chapter int) *apperrors.AppError {
	return apperrors.New(apperrors.CodeChapterNotFound, fmt.Sprintf("%s %d was not found", book, chapter))
}

func fetchStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case apperrors.HasCode(err, apperrors.CodeChapterNotFound):
		return "not_found"
	default:
		return "error"
	}
}
