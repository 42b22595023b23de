package rtf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"wordsearch/pkg/logger"
)

// OfficeRtfParser strips RTF control words and returns the document text.
type OfficeRtfParser struct{}

func (p *OfficeRtfParser) Parse(filePath string) ([]byte, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read rtf file %s: %w", filePath, err)
	}
	text := ExtractText(string(content))
	logger.Logger.Printf("rtf %s: %d bytes of text", filePath, len(text))
	return []byte(text), nil
}

// destinations whose content is never displayed.
var ignoredGroups = map[string]bool{
	"fonttbl":           true,
	"colortbl":          true,
	"stylesheet":        true,
	"listtable":         true,
	"listoverridetable": true,
	"info":              true,
	"pict":              true,
	"object":            true,
	"objdata":           true,
	"themedata":         true,
	"datastore":         true,
	"xmlnstbl":          true,
	"rsidtbl":           true,
	"generator":         true,
	"header":            true,
	"footer":            true,
	"fldinst":           true,
	"latentstyles":      true,
	"shppict":           true,
	"nonshppict":        true,
}

type group struct {
	skip bool
	// ucSkip is the number of fallback characters after a \u escape.
	ucSkip int
}

// ExtractText returns the visible text of an RTF document.
func ExtractText(rtf string) string {
	var sb strings.Builder
	stack := []group{{ucSkip: 1}}
	top := func() *group { return &stack[len(stack)-1] }
	pendingSkip := 0

	for i := 0; i < len(rtf); i++ {
		c := rtf[i]
		switch c {
		case '{':
			stack = append(stack, *top())
			continue
		case '}':
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			continue
		case '\r', '\n':
			continue
		case '\\':
		default:
			if pendingSkip > 0 {
				pendingSkip--
				continue
			}
			if !top().skip {
				sb.WriteByte(c)
			}
			continue
		}

		// control word or symbol
		if i+1 >= len(rtf) {
			break
		}
		next := rtf[i+1]
		if !isLetter(next) {
			i++
			switch next {
			case '*':
				top().skip = true
			case '\'':
				if i+2 < len(rtf) {
					if v, err := strconv.ParseUint(rtf[i+1:i+3], 16, 8); err == nil && !top().skip {
						if pendingSkip > 0 {
							pendingSkip--
						} else {
							sb.WriteRune(charmap.Windows1252.DecodeByte(byte(v)))
						}
					}
					i += 2
				}
			case '~':
				if !top().skip {
					sb.WriteByte(' ')
				}
			case '\\', '{', '}':
				if !top().skip {
					sb.WriteByte(next)
				}
			}
			continue
		}

		j := i + 1
		for j < len(rtf) && isLetter(rtf[j]) {
			j++
		}
		word := rtf[i+1 : j]
		k := j
		if k < len(rtf) && (rtf[k] == '-' || isDigit(rtf[k])) {
			k++
			for k < len(rtf) && isDigit(rtf[k]) {
				k++
			}
		}
		param, hasParam := 0, k > j
		if hasParam {
			param, _ = strconv.Atoi(rtf[j:k])
		}
		if k < len(rtf) && rtf[k] == ' ' {
			k++
		}
		i = k - 1

		if ignoredGroups[word] {
			top().skip = true
			continue
		}
		if top().skip {
			continue
		}
		switch word {
		case "par", "line", "row", "sect", "page":
			sb.WriteByte('\n')
		case "tab", "cell":
			sb.WriteByte('\t')
		case "uc":
			top().ucSkip = param
		case "u":
			if param < 0 {
				param += 65536
			}
			sb.WriteRune(rune(param))
			pendingSkip = top().ucSkip
		case "emdash", "endash":
			sb.WriteByte('-')
		case "lquote", "rquote":
			sb.WriteByte('\'')
		case "ldblquote", "rdblquote":
			sb.WriteByte('"')
		}
	}

	lines := strings.Split(sb.String(), "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
