package ports

// LoggerPort is the logging surface the core depends on.
type LoggerPort interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}
