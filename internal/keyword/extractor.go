package keyword

import (
	"regexp"
	"strings"
)

// Extractor нормализует свободный текст отчета в набор ключевых слов.
// Интерфейс позволяет менять список стоп-слов и локаль,
// не затрагивая логику сопоставления отчетов.
type Extractor interface {
	Extract(today []string, problems string) []string
}

// Токены разделяются любыми символами, кроме букв и цифр.
var tokenSplitRE = regexp.MustCompile(`[^\pL\pN]+`)

// StopWordExtractor реализует Extractor с фиксированным списком стоп-слов.
type StopWordExtractor struct {
	stopWords map[string]struct{}
}

// NewStopWordExtractor создает экстрактор с английским списком стоп-слов.
func NewStopWordExtractor() *StopWordExtractor {
	return NewStopWordExtractorWithList(englishStopWords)
}

// NewStopWordExtractorWithList создает экстрактор с произвольным списком стоп-слов.
func NewStopWordExtractorWithList(stopWords []string) *StopWordExtractor {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &StopWordExtractor{stopWords: set}
}

// Extract возвращает дедуплицированный набор значимых слов из задач на сегодня
// и описания проблем. Порядок соответствует первому вхождению, поэтому результат
// детерминирован. Функция чистая: не имеет побочных эффектов.
func (e *StopWordExtractor) Extract(today []string, problems string) []string {
	text := strings.Join(today, " ") + " " + problems

	parts := tokenSplitRE.Split(strings.ToLower(text), -1)

	seen := make(map[string]struct{}, len(parts))
	keywords := make([]string, 0, len(parts))
	for _, token := range parts {
		if token == "" {
			continue
		}
		if _, stop := e.stopWords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}

	return keywords
}
