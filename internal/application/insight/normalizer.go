package insight

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"thelight-api/pkg/metrics"
)

// Insight 规范化后的模型输出
type Insight struct {
	Summary   string   `json:"summary"`
	Takeaways []string `json:"takeaways"`
}

// NormalizePath 规范化走到的恢复路径，用作指标标签
type NormalizePath string

const (
	PathJSON       NormalizePath = "json"
	PathRecovered  NormalizePath = "recovered"
	PathLastResort NormalizePath = "last_resort"
)

const (
	lastResortLimit       = 500
	minTakeawayLength     = 21
	unextractedSummaryMsg = "Summary could not be extracted properly."
)

// DefaultTakeaways 过滤后没有可用要点时的兜底内容
var DefaultTakeaways = []string{
	"Reflect on how the themes in this chapter apply to your daily life.",
	"Consider practical ways to integrate these biblical principles into your relationships and decisions.",
	"Take time to meditate on the spiritual lessons and how they can transform your perspective.",
}

var (
	fenceJSON        = regexp.MustCompile("```json\\s*")
	fencePlain       = regexp.MustCompile("```\\s*")
	summaryField     = regexp.MustCompile(`"summary"\s*:\s*"((?:[^"\\]|\\.)*?)"`)
	takeawaysOpen    = regexp.MustCompile(`"takeaways"\s*:\s*\[`)
	summaryFragment  = regexp.MustCompile(`"summary"\s*:\s*"([\s\S]{0,500})`)
	numberedLabel    = regexp.MustCompile(`(?i)^(takeaway|insight|principle)\s*\d+`)
	boilerplateWords = []string{"placeholder", "configure", "api key"}
)

// Normalize 将模型原始输出整理为 {summary, takeaways}。
// 全函数：任何输入都返回可用结果，takeaways 永不为空。
func Normalize(raw string) Insight {
	out, path := normalize(raw)
	metrics.InsightNormalizeTotal.WithLabelValues(string(path)).Inc()
	return out
}

func normalize(raw string) (Insight, NormalizePath) {
	cleaned := stripFences(raw)
	candidate := outermostObject(cleaned)

	var (
		summary   string
		takeaways []string
		path      NormalizePath
	)

	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err == nil && obj != nil {
		path = PathJSON
		summary, _ = obj["summary"].(string)
		takeaways = coerceTakeaways(obj["takeaways"])
	} else {
		summary, takeaways, path = recoverFields(candidate)
	}

	return Insight{
		Summary:   summary,
		Takeaways: filterTakeaways(takeaways),
	}, path
}

// stripFences 去掉 markdown 代码块标记
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = fenceJSON.ReplaceAllString(s, "")
	s = fencePlain.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// outermostObject 截取第一个 { 到最后一个 } 之间的文本；找不到时原样返回
func outermostObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// recoverFields JSON 解析失败时按字段模式提取
func recoverFields(s string) (string, []string, NormalizePath) {
	var summary string
	if m := summaryField.FindStringSubmatch(s); m != nil {
		summary = unescapeSummary(m[1])
	}

	var takeaways []string
	if body, ok := takeawaysBody(s); ok {
		takeaways = parseArrayItems(body)
	}

	if summary != "" || len(takeaways) > 0 {
		if summary == "" {
			summary = unextractedSummaryMsg
		}
		return summary, takeaways, PathRecovered
	}

	if m := summaryFragment.FindStringSubmatch(s); m != nil {
		return m[1] + "...", nil, PathLastResort
	}
	return truncateRunes(s, lastResortLimit), nil, PathLastResort
}

// takeawaysBody 找到 "takeaways": [ 之后第一个后随 , 或 } 的 ]，返回两者之间的文本
func takeawaysBody(s string) (string, bool) {
	loc := takeawaysOpen.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	rest := s[loc[1]:]
	for i := 0; i < len(rest); i++ {
		if rest[i] != ']' {
			continue
		}
		after := strings.TrimLeftFunc(rest[i+1:], unicode.IsSpace)
		if after != "" && (after[0] == ',' || after[0] == '}') {
			return rest[:i], true
		}
	}
	return "", false
}

func unescapeSummary(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\'`, "'")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}

// coerceTakeaways 将任意形态的 takeaways 转为字符串列表
func coerceTakeaways(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return splitTakeawayLines(t)
	default:
		return nil
	}
}

func splitTakeawayLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || numberedLabel.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// filterTakeaways 去掉样板/过短的条目；全部被过滤时返回默认要点
func filterTakeaways(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if isBoilerplate(item) || utf8.RuneCountInString(item) < minTakeawayLength {
			continue
		}
		out = append(out, item)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultTakeaways...)
	}
	return out
}

func isBoilerplate(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range boilerplateWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}
