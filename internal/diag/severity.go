package diag

// Severity ранжирует диагностики; порядок значим, сравнения вида
// `>= SevError` опираются на числовые значения.
type Severity uint8

const (
	SevInfo    Severity = iota // заметка, на результат не влияет
	SevWarning                 // подозрительно, но разбор корректен
	SevError                   // нарушение грамматики или контекста
)

// String отдаёт метку в верхнем регистре, как её печатает diagfmt.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
