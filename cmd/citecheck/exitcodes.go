package main

// Exit codes
const (
	ExitSuccess     = 0 // Success, no suspect citations
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error
	ExitDataError   = 3 // Data error (unreadable PDF, no extractable text)
	ExitSuspect     = 4 // Verification completed and found suspect citations
)
