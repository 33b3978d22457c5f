// Package logger builds the slog loggers and attributes shared by the
// validator, the feedback presenter and the HTTP guard.
//
// New creates a *slog.Logger from functional options: output format (text or
// JSON), minimum level, static attributes, and ContextExtractor callbacks that
// add attributes pulled from the context of every record. Discard is the
// default for components that have not been given a logger.
//
// The attribute helpers fix the keys used across the module: component,
// pass_id, mode, field, fields, field_count, rule, errors, duration, path,
// status and error.
//
// # Usage
//
//	log := logger.New(
//		logger.WithDebug(),
//		logger.WithAttr(logger.Component("signup")),
//		logger.WithContextExtractors(validator.PassIDExtractor),
//	)
//	engine := validator.New(validator.WithLogger(log))
//
// Custom rules receive a context carrying the pass ID, so records they log
// through such a logger line up with the engine's own.
package logger
