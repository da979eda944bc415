package insight

import "strings"

// scanState 数组体扫描器的状态
type scanState int

const (
	stateOutside scanState = iota // 字符串外
	stateInString                 // 字符串内
	stateEscape                   // 刚读到反斜杠，下一个字符原样保留
)

// arrayScanner 将 JSON 数组体按顶层逗号切分。
// 字符串内的逗号和转义引号不会触发切分；转义结束后回到进入转义前的状态。
type arrayScanner struct {
	state  scanState
	resume scanState
	cur    strings.Builder
	items  []string
}

func (s *arrayScanner) feed(ch rune) {
	switch s.state {
	case stateEscape:
		s.cur.WriteRune(ch)
		s.state = s.resume
	case stateOutside:
		switch ch {
		case '\\':
			s.cur.WriteRune(ch)
			s.resume, s.state = stateOutside, stateEscape
		case '"':
			s.cur.WriteRune(ch)
			s.state = stateInString
		case ',':
			s.flush()
		default:
			s.cur.WriteRune(ch)
		}
	case stateInString:
		switch ch {
		case '\\':
			s.cur.WriteRune(ch)
			s.resume, s.state = stateInString, stateEscape
		case '"':
			s.cur.WriteRune(ch)
			s.state = stateOutside
		default:
			s.cur.WriteRune(ch)
		}
	}
}

func (s *arrayScanner) flush() {
	s.items = append(s.items, s.cur.String())
	s.cur.Reset()
}

// splitArrayBody 返回数组体中的原始元素文本（未去引号、未反转义）
func splitArrayBody(body string) []string {
	var s arrayScanner
	for _, ch := range body {
		s.feed(ch)
	}
	if strings.TrimSpace(s.cur.String()) != "" {
		s.flush()
	}
	return s.items
}

var itemUnescaper = strings.NewReplacer(`\n`, "\n", `\"`, `"`)

// parseArrayItems 切分数组体并清理每个元素：去空白、去掉首尾各一个引号、反转义 \n 与 \"
func parseArrayItems(body string) []string {
	raw := splitArrayBody(body)
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		cleaned := stripOneQuote(strings.TrimSpace(item))
		if cleaned == "" {
			continue
		}
		out = append(out, itemUnescaper.Replace(cleaned))
	}
	return out
}

func stripOneQuote(s string) string {
	if s != "" && (s[0] == '"' || s[0] == '\'') {
		s = s[1:]
	}
	if n := len(s); n > 0 && (s[n-1] == '"' || s[n-1] == '\'') {
		s = s[:n-1]
	}
	return s
}
