package constants

// DefaultEnvPath is the default path to the optional .env file
const DefaultEnvPath = "./.env"

// DefaultProjectPath is the fallback project directory (container layout)
const DefaultProjectPath = "/app"

// DefaultPythonPath is the fallback interpreter, resolved via $PATH
const DefaultPythonPath = "python"

// LogDirName is the directory under the project path receiving job output
const LogDirName = "logs"

// LogFileName is the append-only file the job's stdout/stderr lands in
const LogFileName = "review_processing.log"

// JournalFileName is the install journal kept next to the job log
const JournalFileName = "reviewcron_journal.jsonl"

// LockFileName is the lock file guarding the crontab read-modify-write
const LockFileName = ".reviewcron.lock"

// TextfileName is the metrics file written to the textfile collector dir
const TextfileName = "reviewcron.prom"
