// Package logger builds the *slog.Logger used across formkit.
//
// New assembles a text or JSON handler from functional options and wraps it
// with LogHandlerDecorator, which pulls request-scoped attributes such as the
// request id out of context.Context on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.AppName),
//	    logger.WithContextExtractors(formkit.LogRequestID),
//	)
//	log.DebugContext(ctx, "field validation failed", logger.Field("email"), logger.Rule("validation.email"))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty Attr for nil errors so call sites need no nil checks.
package logger
