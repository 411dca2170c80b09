package domain

// PageSize is the provider's fixed page length for list calls.
const PageSize = 50

// StatusPending is the status every new task starts in.
const StatusPending = "2"

// Labels are the Bitrix24 portal wording, returned as is.
var priorityLabels = map[string]string{
	"0": "Низкий",
	"1": "Средний",
	"2": "Высокий",
}

var statusLabels = map[string]string{
	"2": "Ждёт выполнения",
	"3": "Выполняется",
	"4": "Ожидает контроля",
	"5": "Завершена",
	"6": "Отложена",
}

// PriorityLabel returns the label for a provider priority code, or nil for unknown codes.
func PriorityLabel(code string) *string {
	return lookupLabel(priorityLabels, code)
}

// StatusLabel returns the label for a provider status code, or nil for unknown codes.
func StatusLabel(code string) *string {
	return lookupLabel(statusLabels, code)
}

func lookupLabel(table map[string]string, code string) *string {
	label, ok := table[code]
	if !ok {
		return nil
	}
	return &label
}
