package profileservice

// Logger интерфейс логгера
type Logger interface {
	Info(format string, v ...any)
	Error(format string, v ...any)
}
