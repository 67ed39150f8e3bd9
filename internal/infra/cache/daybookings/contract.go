package daybookings

// Metrics интерфейс для метрик кэша
type Metrics interface {
	IncCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
