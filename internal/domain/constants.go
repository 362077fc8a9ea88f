package domain

// SentinelCategory подставляется вместо отсутствующего или пустого tipo_colecao
const SentinelCategory = "Sem Tipo"

// FilterAll значение фильтра, выбирающее все агендаменты
const FilterAll = "all"

// Time format constants
const (
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02/01/2006" // dd/mm/yyyy
	MonthKeyFormat    = "01/2006"    // MM/YYYY
	MonthParamFormat  = "2006-01"    // YYYY-MM
)

// Тексты для отсутствующей и нераспознанной даты
const (
	MsgDateMissing = "Data não informada"
	MsgDateInvalid = "Data inválida"
)

// StatusOrder фиксированный порядок статусов в статистике
var StatusOrder = []BookingStatus{
	StatusConfirmed,
	StatusPending,
	StatusCancelled,
	StatusCompleted,
}

// DefaultStatus статус, который получает новый агендамент без явного статуса
const DefaultStatus = StatusPending
