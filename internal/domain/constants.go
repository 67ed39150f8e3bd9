package domain

import "github.com/m04kA/SMC-RoomBookingService/pkg/types"

// Рабочие часы, в пределах которых генерируются альтернативные слоты
// Не настраиваются: движок доступности всегда работает в окне 08:00-18:00
const (
	WorkingHoursStart types.TimeString = "08:00"
	WorkingHoursEnd   types.TimeString = "18:00"
)

// Параметры генерации предложений
const (
	SuggestionStepMinutes = 30 // Шаг сканирования свободных окон
	MaxSuggestionsPerGap  = 3  // Максимум предложений из одного окна между бронированиями
	MaxSuggestions        = 6  // Максимум предложений за один вызов
)

// Default configuration values
const (
	DefaultMinBookingNoticeMinutes = 0
	DefaultTimezone                = "UTC"
)

// Business validation constants
const (
	MinBookingNameLength   = 3
	MaxBookingNameLength   = 100
	MaxDescriptionLength   = 1000
	MaxRefreshmentQuantity = 500
	MaxLocationNameLength  = 200
	MaxRoomNameLength      = 200
	MaxManagerNameLength   = 200

	// EstimatedParticipants оценка количества участников одной встречи для дашборда
	EstimatedParticipants = 4
)

// Ресурсы по умолчанию (get-or-create default)
const (
	DefaultLocationName    = "Default Location"
	DefaultLocationAddress = "Address to be defined"
	DefaultRoomName        = "Default Room"
	DefaultManagerName     = "Default Manager"
	DefaultManagerEmail    = "manager@default.local"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
