package constants

// DefaultVersion is the default version of the application
const DefaultVersion = "0.1.0-dev"

// DefaultBuildTime is the default build time when not provided at build time
const DefaultBuildTime = "unknown"

// DefaultGitCommit is the default git commit hash when not provided at build time
const DefaultGitCommit = "unknown"

// DefaultLogLevel is the registrar's own diagnostic log level
const DefaultLogLevel = "info"

// DefaultLogFormat is the registrar's own diagnostic log format
const DefaultLogFormat = "text"
