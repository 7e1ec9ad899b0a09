package reconcile

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VolleyballService/pkg/ptr"
)

// Record сырой документ: поля в том виде, в каком их вернул бэкенд
type Record = map[string]interface{}

// Timestamp разбирает значение времени в порядке приоритета:
// нативное время (time.Time или RFC3339-строка) → обёртка {_seconds, _nanoseconds}
// → число секунд с начала эпохи.
func Timestamp(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	case map[string]interface{}:
		secs, ok := number(t["_seconds"])
		if !ok {
			return time.Time{}, false
		}
		nanos, _ := number(t["_nanoseconds"])
		return time.Unix(int64(secs), int64(nanos)).UTC(), true
	}

	if secs, ok := number(v); ok {
		whole, frac := math.Modf(secs)
		return time.Unix(int64(whole), int64(frac*1e9)).UTC(), true
	}

	return time.Time{}, false
}

// number приводит числовые представления JSON к float64
func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func intField(raw Record, key string) int {
	n, _ := number(raw[key])
	return int(n)
}

func boolField(raw Record, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

func stringField(raw Record, key string) string {
	s, _ := raw[key].(string)
	return s
}

// firstString возвращает первое непустое строковое значение среди алиасов
func firstString(raw Record, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// firstTime возвращает первое разбираемое время среди алиасов
func firstTime(raw Record, keys ...string) (time.Time, bool) {
	for _, k := range keys {
		if t, ok := Timestamp(raw[k]); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func optionalTime(raw Record, keys ...string) *time.Time {
	t, ok := firstTime(raw, keys...)
	if !ok {
		return nil
	}
	return ptr.Ptr(t)
}

func stringSlice(raw Record, key string) []string {
	switch list := raw[key].(type) {
	case []string:
		return append([]string(nil), list...)
	case []interface{}:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
