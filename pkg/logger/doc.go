// Package logger builds slog loggers configured with functional options and
// decorated with context extractors.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it with LogHandlerDecorator, which asks every
// registered ContextExtractor for an attribute before each record is written.
// The request id and the request locale reach every log line that way
// without being passed around explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "chicweb"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        locale.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "content cache purged", logger.Component("watcher"))
//
// Attribute helpers in attr.go keep key names consistent. Error, RequestID
// and Locale return an empty Attr for empty input, which slog drops:
//
//	log.Info("resolved", logger.Error(err))
package logger
