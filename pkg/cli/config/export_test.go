package config

// ParseLogLevel exports parseLogLevel for testing
var ParseLogLevel = parseLogLevel

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, projectID, databaseID string) *Repository {
	return &Repository{
		backend:    backend,
		projectID:  projectID,
		databaseID: databaseID,
	}
}

// NewScoringForTest creates a Scoring config for testing purposes
func NewScoringForTest(path string) *Scoring {
	return &Scoring{path: path}
}
