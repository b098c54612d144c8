package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The key is the English text.
const (
	MsgMenuPrompt = "Choose an action:\n" +
		"1. List departments and their teams\n" +
		"2. Print the department summary report\n" +
		"3. Save the summary report as CSV\n"
	MsgMenuRetry       = "Enter a number from 1 to 3\n"
	MsgTeamsHeading    = "Departments and teams:\n"
	MsgSummaryHeading  = "Department summary report:\n"
	MsgEmployeeCount   = "Number of employees: %s\n"
	MsgMinSalary       = "Minimum salary: %s\n"
	MsgMaxSalary       = "Maximum salary: %s\n"
	MsgAverageSalary   = "Average salary: %s\n"
	MsgReportSaved     = "Report saved to %s\n"
	MsgHistorySaved    = "Summary stored in history as run #%s\n"
	MsgHistoryEmpty    = "No saved summaries found.\n"
	MsgHistoryListHead = "Saved summaries (%s):\n"
	MsgPieChartTitle   = "Employees by Department"
)

// Supported languages.
var (
	English = language.English
	Russian = language.Russian
)

// ErrUnsupportedLanguage is returned for a language other than English or Russian.
var ErrUnsupportedLanguage = errors.New("unsupported language: use en or ru")

var (
	supported = []language.Tag{English, Russian}
	matcher   = language.NewMatcher(supported)
	cat       = newCatalog()
)

// newCatalog registers every message for both languages.
func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(English))

	russian := map[string]string{
		MsgMenuPrompt: "Выберите, что хотите сделать:\n" +
			"1. Вывести департаменты и все команды в нем\n" +
			"2. Вывести сводный отчёт по департаментам\n" +
			"3. Сохранить отчёт из пункта выше в формате csv\n",
		MsgMenuRetry:       "Выберите число от 1 до 3\n",
		MsgTeamsHeading:    "Департаменты и отделы:\n",
		MsgSummaryHeading:  "Сводный отчёт по департаментам:\n",
		MsgEmployeeCount:   "Количество сотрудников: %s\n",
		MsgMinSalary:       "Минимальная ЗП: %s\n",
		MsgMaxSalary:       "Максимальная ЗП: %s\n",
		MsgAverageSalary:   "Средняя ЗП: %s\n",
		MsgReportSaved:     "Отчёт сохранен в файл %s\n",
		MsgHistorySaved:    "Сводка сохранена в историю под номером %s\n",
		MsgHistoryEmpty:    "Сохраненных сводок не найдено.\n",
		MsgHistoryListHead: "Сохраненные сводки (%s):\n",
		MsgPieChartTitle:   "Сотрудники по департаментам",
	}

	for key, ru := range russian {
		// SetString only fails for malformed keys, which would be a programming error.
		if err := b.SetString(English, key, key); err != nil {
			panic(err)
		}
		if err := b.SetString(Russian, key, ru); err != nil {
			panic(err)
		}
	}
	return b
}

// Parse resolves a language name such as "en", "ru", "ru-RU" or "english".
// An empty string selects English.
func Parse(name string) (language.Tag, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return English, nil
	case "english":
		return English, nil
	case "russian":
		return Russian, nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return language.Und, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
	}
	return supported[index], nil
}

// NewPrinter returns a printer for tag backed by the deptreport catalog.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}
