package logger

// Package logger provides the process-wide zerolog logger. Console output goes
// to stderr; an optional rotating log file receives everything and a separate
// rotating error log receives error-level events only.
