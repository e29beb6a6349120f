// Package orderform проверяет значения параметров, присланные с заказом,
// против набора параметров, заданных для услуги.
package orderform

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"ordermanager/internal/app/apperr"
	"ordermanager/internal/app/ds"
)

// Имена полей HTML-формы заказа
const (
	FieldTitle   = "parameter_title"
	FieldValue   = "parameter_value"
	FieldChecked = "parameter_checked"
)

// Значения флажка. Скрытое поле формы шлет CheckboxOff всегда,
// отмеченный флажок добавляет свое наименование в FieldChecked.
const (
	CheckboxOn  = "on"
	CheckboxOff = "false"
)

const (
	msgIncomplete = "Заполните все значения параметров услуги для заказа."
	msgUnknown    = "неизвестный параметр для этой услуги"
	msgDuplicate  = "параметр указан несколько раз"
	msgMissing    = "не указано значение параметра"
	msgBlank      = "значение не может быть пустым"
	msgTooLong    = "значение длиннее 2000 символов"
	msgWrongType  = "значение не соответствует типу поля"
)

var validate = validator.New()

// правила validator для проверки значения по типу поля
var typeRules = map[ds.ParameterType]string{
	ds.TypeNumber:   "numeric,excludes=.",
	ds.TypeEmail:    "email",
	ds.TypeDate:     "datetime=2006-01-02",
	ds.TypeDatetime: "datetime=2006-01-02T15:04|datetime=2006-01-02T15:04:05",
	ds.TypeTime:     "datetime=15:04|datetime=15:04:05",
	ds.TypeCheckbox: "oneof=on true false 1 0 yes no",
}

// Pair хранит присланную пару «наименование параметра / значение»
type Pair struct {
	Title string
	Value string
}

// FromLists собирает пары из параллельных списков формы
func FromLists(titles, values []string) ([]Pair, error) {
	if len(titles) != len(values) {
		verr := apperr.NewValidationError()
		verr.AddNonField(msgIncomplete)
		return nil, verr
	}

	pairs := make([]Pair, len(titles))
	for i := range titles {
		pairs[i] = Pair{Title: titles[i], Value: values[i]}
	}
	return pairs, nil
}

// MarkChecked ставит CheckboxOn для параметров, чьи флажки отмечены в форме
func MarkChecked(pairs []Pair, checked []string) []Pair {
	if len(checked) == 0 {
		return pairs
	}
	on := make(map[string]bool, len(checked))
	for _, title := range checked {
		on[strings.TrimSpace(title)] = true
	}
	for i := range pairs {
		if on[strings.TrimSpace(pairs[i].Title)] {
			pairs[i].Value = CheckboxOn
		}
	}
	return pairs
}

// Validate сверяет пары с параметрами услуги и возвращает строки для вставки.
// Проверки идут по порядку: неизвестные параметры, полнота набора и повторы,
// пустые значения, длина, соответствие типу. Первая неудачная стадия
// возвращает все найденные на ней ошибки.
func Validate(schema []ds.ParameterInService, pairs []Pair) ([]ds.ParameterInOrder, error) {
	byTitle := make(map[string]ds.ParameterInService, len(schema))
	for _, assigned := range schema {
		byTitle[assigned.Parameter.Title] = assigned
	}

	verr := apperr.NewValidationError()
	for _, p := range pairs {
		if _, ok := byTitle[strings.TrimSpace(p.Title)]; !ok {
			verr.AddField(p.Title, msgUnknown)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		title := strings.TrimSpace(p.Title)
		if seen[title] {
			verr.AddField(title, msgDuplicate)
		}
		seen[title] = true
	}
	for _, assigned := range schema {
		if !seen[assigned.Parameter.Title] {
			verr.AddField(assigned.Parameter.Title, msgMissing)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	for _, p := range pairs {
		if strings.TrimSpace(p.Value) == "" {
			verr.AddField(strings.TrimSpace(p.Title), msgBlank)
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	rows := make([]ds.ParameterInOrder, 0, len(pairs))
	for _, p := range pairs {
		title := strings.TrimSpace(p.Title)
		value := strings.TrimSpace(p.Value)
		assigned := byTitle[title]

		if utf8.RuneCountInString(value) > ds.ValueMaxLength {
			verr.AddField(title, msgTooLong)
			continue
		}
		if !conforms(assigned.Type, value) {
			verr.AddField(title, msgWrongType)
			continue
		}

		rows = append(rows, ds.ParameterInOrder{
			ParameterID: assigned.ParameterID,
			Value:       value,
			Parameter:   assigned.Parameter,
		})
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return rows, nil
}

func conforms(t ds.ParameterType, value string) bool {
	rule, ok := typeRules[t]
	if !ok {
		return true
	}
	if t == ds.TypeCheckbox {
		value = strings.ToLower(value)
	}
	return validate.Var(value, rule) == nil
}
