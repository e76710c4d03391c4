package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Interpolate replaces the '?' placeholders of the 'sql' with the quoted 'args'.
// The result is meant for logging and displaying the queries, not for execution.
func Interpolate(sql string, args []interface{}) string {
	sb := &strings.Builder{}
	var (
		i       int
		inQuote bool
	)
	for _, r := range sql {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case r == '?' && !inQuote && i < len(args):
			sb.WriteString(quote(args[i]))
			i++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func quote(arg interface{}) string {
	switch v := arg.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case []byte:
		return "'" + strings.ReplaceAll(string(v), "'", "''") + "'"
	case bool:
		if v {
			return "1"
		}
		return "0"
	case time.Time:
		return "'" + v.Format("2006-01-02 15:04:05") + "'"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return quote(v.String())
	default:
		return fmt.Sprintf("%v", v)
	}
}
