package moderation

import (
	"strings"
	"unicode"
)

// Статический список запрещённых слов: мат, секс-услуги, финансовое
// мошенничество, наркотики. Первичный фильтр перед сохранением
// сообщения; модерация идёт отдельно по жалобам.
var forbiddenWords = []string{
	// мат и оскорбления
	"시발", "씨발", "개새끼", "좆", "병신", "미친새끼", "개놈", "년놈",
	// секс-услуги
	"섹스", "성관계", "원나잇", "섹파", "폰섹", "조교", "강간", "성매매",
	// финансовое мошенничество
	"돈거래", "계좌이체", "송금", "대출", "투자", "도박", "베팅", "사기",
	// наркотики
	"마약", "대마초", "필로폰", "히로뽕", "약물", "환각제",
}

// ContainsForbiddenWords регистронезависимая проверка по подстроке
func ContainsForbiddenWords(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range forbiddenWords {
		if strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}
	return false
}

// Mask заменяет запрещённые слова звёздочками. Сопоставление
// регистронезависимое, как в ContainsForbiddenWords; свёртка
// порунная, чтобы индексы совпадали с исходным текстом.
func Mask(text string) string {
	masked := []rune(text)
	lowered := make([]rune, len(masked))
	for i, r := range masked {
		lowered[i] = unicode.ToLower(r)
	}

	for _, word := range forbiddenWords {
		target := []rune(strings.ToLower(word))
		if len(target) == 0 {
			continue
		}
		for i := 0; i+len(target) <= len(lowered); i++ {
			if string(lowered[i:i+len(target)]) != string(target) {
				continue
			}
			for j := range target {
				masked[i+j] = '*'
				lowered[i+j] = '*'
			}
		}
	}

	return string(masked)
}
