// Package logger provides structured logging for pipekit using zerolog.
//
// pipekit components never log on their own. A Logger is handed to the
// opt-in instrumentation (pipe.WithLogging, pipeline.WithLogger) or used by
// programs built on top of the library.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "pipesdemo").WithComponent("caesar")
//	log.Info("encrypted", logger.Fields("chars", 5))
package logger
