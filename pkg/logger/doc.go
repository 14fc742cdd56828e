// Package logger builds *slog.Logger instances from functional options and
// injects attributes pulled from context.Context into every record.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler according to the
// configured Format and wraps it in a ContextHandler which runs the registered
// ContextExtractor callbacks on each Handle call. This is how the textkit CLI
// tags every record with the command being executed without threading the
// name through each call site:
//
//	log := logger.New(
//	    logger.WithOutput(os.Stderr),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	ctx := context.WithValue(ctx, commandKey{}, "is-date")
//	log.InfoContext(ctx, "validated", logger.Count(12))
//
// Level and format can come from configuration strings through ParseLevel and
// ParseFormat. Attribute helpers in attr.go keep key names consistent.
package logger
