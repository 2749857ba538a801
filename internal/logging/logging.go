package logging

import "go.uber.org/zap"

// GetSugaredLogger builds the process-wide logger. Development config
// on purpose: this service runs on kitchen hardware where readable
// console output beats structured JSON.
func GetSugaredLogger() *zap.SugaredLogger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("cannot initialize zap")
	}
	return logger.Sugar()
}
