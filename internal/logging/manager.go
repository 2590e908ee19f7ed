package logging

import (
	"fmt"
	"sort"
	"sync"
)

// LoggerManager управляет логгерами компонентов поверх глобального логгера
type LoggerManager struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = &LoggerManager{
			loggers: make(map[string]*Logger),
		}
	})
	return globalManager
}

// GetLogger возвращает логгер для компонента, создавая его при необходимости
func (lm *LoggerManager) GetLogger(component string) *Logger {
	lm.mu.RLock()
	if logger, exists := lm.loggers[component]; exists {
		lm.mu.RUnlock()
		return logger
	}
	lm.mu.RUnlock()

	lm.mu.Lock()
	defer lm.mu.Unlock()

	// Проверяем еще раз на случай race condition
	if logger, exists := lm.loggers[component]; exists {
		return logger
	}

	logger := Default().With(component)
	lm.loggers[component] = logger
	return logger
}

// Reset забывает созданные логгеры; следующие GetLogger возьмут текущий глобальный логгер
func (lm *LoggerManager) Reset() {
	lm.mu.Lock()
	lm.loggers = make(map[string]*Logger)
	lm.mu.Unlock()
}

// ListComponents возвращает отсортированный список зарегистрированных компонентов
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.RLock()
	defer lm.mu.RUnlock()

	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// SetLogLevel устанавливает уровень логирования для компонента
func (lm *LoggerManager) SetLogLevel(component string, consoleLevel, fileLevel LogLevel) error {
	lm.mu.RLock()
	logger, exists := lm.loggers[component]
	lm.mu.RUnlock()

	if !exists {
		return fmt.Errorf("logger for component %s not found", component)
	}

	logger.SetLevels(consoleLevel, fileLevel)
	return nil
}

// GetComponentLogger удобная обёртка над глобальным менеджером
func GetComponentLogger(component string) *Logger {
	return GetLoggerManager().GetLogger(component)
}

// GetProbeLogger возвращает логгер компонента probe
func GetProbeLogger() *Logger {
	return GetComponentLogger("probe")
}
