package implementation

import "todonotediary-be/internal/pkg/logger"

type nopLogger struct{}

func newNopLogger() logger.ILogger { return nopLogger{} }

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
