package messaging

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/wb-go/wbf/logger"
)

// loggerAdapter пишет логи watermill в общий логгер приложения.
type loggerAdapter struct {
	log    logger.Logger
	fields watermill.LogFields
}

func NewLogger(log logger.Logger) watermill.LoggerAdapter {
	return &loggerAdapter{log: log}
}

func (a *loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	errText := ""
	if err != nil {
		errText = err.Error()
	}
	a.log.Error(msg,
		logger.String("error", errText),
		logger.Any("fields", a.fields.Add(fields)),
	)
}

func (a *loggerAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, logger.Any("fields", a.fields.Add(fields)))
}

func (a *loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, logger.Any("fields", a.fields.Add(fields)))
}

func (a *loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, logger.Any("fields", a.fields.Add(fields)))
}

func (a *loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &loggerAdapter{log: a.log, fields: a.fields.Add(fields)}
}
