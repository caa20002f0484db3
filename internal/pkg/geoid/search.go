package geoid

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/geoid-microservice/internal/domain"
)

// Search ищет записи уровня, содержащие query, без учёта регистра и диакритики
// ("ile" находит "Île-de-France"). Результаты в порядке объявления таблицы.
// limit <= 0 означает без ограничения.
//
// Search предназначен для автодополнения в формах и не влияет на Resolve,
// который сравнивает названия строго.
func Search(level domain.Level, query string, limit int) []domain.GeoEntry {
	t := tableFor(level)
	if t == nil {
		return nil
	}

	needle := Normalize(query)
	if needle == "" {
		return nil
	}

	var result []domain.GeoEntry
	for _, e := range t.entries {
		if !strings.Contains(Normalize(e.name), needle) {
			continue
		}
		result = append(result, domain.GeoEntry{Level: level, Name: e.name, ID: e.id})
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result
}

// Normalize приводит строку к нижнему регистру и убирает диакритические знаки
func Normalize(s string) string {
	// transform.Chain хранит состояние, поэтому создаётся на каждый вызов
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
