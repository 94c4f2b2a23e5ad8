// Package sanitize turns user-submitted HTML into plain text.
package sanitize

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"strings"
)

// 内容不可读的元素，整个丢弃
var dropped = map[atom.Atom]bool{
	atom.Script:    true,
	atom.Style:     true,
	atom.Template:  true,
	atom.Noscript:  true,
	atom.Iframe:    true,
	atom.Object:    true,
	atom.Svg:       true,
	atom.Xmp:       true,
	atom.Noembed:   true,
	atom.Noframes:  true,
	atom.Plaintext: true,
}

// 内容按原样读出、不会解析为标签的元素，文字需要再过滤一次
var rcdata = map[atom.Atom]bool{
	atom.Textarea: true,
	atom.Title:    true,
}

// 块级元素，前后需要换行，否则相邻段落的文字会粘在一起
var blocks = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Br:         true,
	atom.Li:         true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Blockquote: true,
	atom.Pre:        true,
	atom.Tr:         true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
}

// Text extracts the readable text of raw, discarding every tag, the content
// of script-like elements and comments. Entities are decoded.
func Text(raw string) string {
	var (
		sb      strings.Builder
		depth   int  // 位于被丢弃元素内部的层数
		escaped bool // 位于 textarea / title 内部
	)

	newline := func() {
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
	}

	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// 读到结尾（io.EOF）
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			switch {
			case depth > 0:
			case escaped:
				sb.WriteString(Text(string(z.Text())))
			default:
				sb.Write(z.Text())
			}
		case html.StartTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch {
			case dropped[a]:
				depth++
			case rcdata[a]:
				escaped = true
			case blocks[a] && depth == 0:
				newline()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch {
			case dropped[a]:
				if depth > 0 {
					depth--
				}
			case rcdata[a]:
				escaped = false
			case blocks[a] && depth == 0:
				newline()
			}
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.Br && depth == 0 {
				newline()
			}
		}
	}
}
