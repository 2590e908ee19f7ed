package logging

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// ErrUnknownLevel возвращается ParseLevel для неизвестного имени уровня
var ErrUnknownLevel = errors.New("unknown log level")

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает имя уровня без учёта регистра
func ParseLevel(name string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return TRACE, nil
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// Options задаёт вывод логгера.
// File пустой - файл не пишется.
type Options struct {
	Console      io.Writer
	ConsoleLevel LogLevel
	File         string
	FileLevel    LogLevel
	MaxSizeMB    int
	MaxBackups   int
}

// DefaultOptions пишет INFO и выше в stdout
func DefaultOptions() Options {
	return Options{
		Console:      os.Stdout,
		ConsoleLevel: INFO,
		FileLevel:    DEBUG,
		MaxSizeMB:    10,
		MaxBackups:   3,
	}
}

// Logger представляет систему логирования
type Logger struct {
	component       string
	consoleLogger   *log.Logger
	fileLogger      *log.Logger
	file            io.Closer
	mu              sync.RWMutex
	minConsoleLevel LogLevel
	minFileLevel    LogLevel
}

// New создаёт логгер для компонента
func New(component string, opts Options) *Logger {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	l := &Logger{
		component:       component,
		consoleLogger:   log.New(console, "", log.LstdFlags),
		minConsoleLevel: opts.ConsoleLevel,
		minFileLevel:    opts.FileLevel,
	}

	if opts.File != "" {
		// Ротация файла по размеру
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		}
		l.fileLogger = log.New(rotator, "", log.LstdFlags)
		l.file = rotator
	}

	return l
}

// With возвращает логгер компонента, пишущий в те же приёмники.
// Закрывать его не нужно: файлом владеет исходный логгер.
func (l *Logger) With(component string) *Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &Logger{
		component:       component,
		consoleLogger:   l.consoleLogger,
		fileLogger:      l.fileLogger,
		minConsoleLevel: l.minConsoleLevel,
		minFileLevel:    l.minFileLevel,
	}
}

// SetLevels меняет минимальные уровни консоли и файла
func (l *Logger) SetLevels(consoleLevel, fileLevel LogLevel) {
	l.mu.Lock()
	l.minConsoleLevel = consoleLevel
	l.minFileLevel = fileLevel
	l.mu.Unlock()
}

// Close закрывает файл логов, если он открыт
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) Tracef(format string, args ...interface{}) { l.logMessage(TRACE, format, args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.logMessage(DEBUG, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.logMessage(INFO, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.logMessage(WARN, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.logMessage(ERROR, format, args...) }

// logMessage внутренняя функция для логирования
func (l *Logger) logMessage(level LogLevel, format string, args ...interface{}) {
	if l == nil {
		return
	}

	l.mu.RLock()
	consoleLevel, fileLevel := l.minConsoleLevel, l.minFileLevel
	l.mu.RUnlock()

	if level < consoleLevel && (l.fileLogger == nil || level < fileLevel) {
		return
	}

	message := fmt.Sprintf(format, args...)
	if l.component != "" {
		message = fmt.Sprintf("[%s] %s", l.component, message)
	}
	message = fmt.Sprintf("[%s] %s", level.String(), message)

	if l.fileLogger != nil && level >= fileLevel {
		l.fileLogger.Println(message)
	}
	if level >= consoleLevel {
		l.consoleLogger.Println(message)
	}
}

// Глобальный экземпляр логгера
var (
	defaultMu     sync.RWMutex
	defaultLogger = New("", DefaultOptions())
)

// Init заменяет глобальный логгер. Предыдущий логгер закрывается.
func Init(opts Options) error {
	defaultMu.Lock()
	prev := defaultLogger
	defaultLogger = New("", opts)
	defaultMu.Unlock()

	GetLoggerManager().Reset()

	return prev.Close()
}

// Default возвращает глобальный логгер
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// CloseLogger закрывает глобальный логгер
func CloseLogger() error {
	return Default().Close()
}

// LogTrace логирует сообщение уровня TRACE
func LogTrace(format string, args ...interface{}) {
	Default().logMessage(TRACE, format, args...)
}

// LogDebug логирует сообщение уровня DEBUG
func LogDebug(format string, args ...interface{}) {
	Default().logMessage(DEBUG, format, args...)
}

// LogInfo логирует сообщение уровня INFO
func LogInfo(format string, args ...interface{}) {
	Default().logMessage(INFO, format, args...)
}

// LogWarn логирует сообщение уровня WARN
func LogWarn(format string, args ...interface{}) {
	Default().logMessage(WARN, format, args...)
}

// LogError логирует сообщение уровня ERROR
func LogError(format string, args ...interface{}) {
	Default().logMessage(ERROR, format, args...)
}
