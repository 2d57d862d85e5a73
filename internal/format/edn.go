package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes an EDN representation of v.
//
// We target the subset our payloads need (maps, vectors, strings, numbers,
// booleans, nil). Structs are routed through JSON first so the existing json
// tags drive field naming; JSON keys come out as EDN keywords.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var buf bytes.Buffer
	appendEDN(&buf, x, 0, pretty)
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

const ednIndent = 2

func appendEDN(buf *bytes.Buffer, v any, level int, pretty bool) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("nil")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case string:
		buf.WriteString(strconv.Quote(t))
	case float64:
		// interface{} JSON numbers are float64; print integral values as ints.
		if float64(int64(t)) == t {
			buf.WriteString(strconv.FormatInt(int64(t), 10))
		} else {
			buf.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
		}
	case []any:
		appendEDNSeq(buf, '[', ']', len(t), level, pretty, func(buf *bytes.Buffer, i int) {
			appendEDN(buf, t[i], level+1, pretty)
		})
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		appendEDNSeq(buf, '{', '}', len(keys), level, pretty, func(buf *bytes.Buffer, i int) {
			buf.WriteByte(':')
			buf.WriteString(ednKeyword(keys[i]))
			buf.WriteByte(' ')
			appendEDN(buf, t[keys[i]], level+1, pretty)
		})
	default:
		buf.WriteString(strconv.Quote(fmt.Sprintf("%v", v)))
	}
}

func appendEDNSeq(buf *bytes.Buffer, open, close byte, n, level int, pretty bool, elem func(*bytes.Buffer, int)) {
	buf.WriteByte(open)
	if n == 0 {
		buf.WriteByte(close)
		return
	}
	for i := 0; i < n; i++ {
		if pretty {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(" ", (level+1)*ednIndent))
		} else if i > 0 {
			buf.WriteByte(' ')
		}
		elem(buf, i)
	}
	if pretty {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", level*ednIndent))
	}
	buf.WriteByte(close)
}

func ednKeyword(s string) string {
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, " ", "-")
}
