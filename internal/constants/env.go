package constants

// Environment variable names consumed by the registrar. Every variable has a
// default, so an empty environment configures a working development install.

// EnvProjectPath is the application project directory the job runs in.
const EnvProjectPath = "PROJECT_PATH"

// EnvPythonPath is the interpreter used to invoke the job entry point.
const EnvPythonPath = "PYTHON_PATH"

// EnvEnvironment selects the schedule tier. Only the literal value
// "production" changes behavior; everything else falls back to development.
const EnvEnvironment = "ENVIRONMENT"

// EnvTierFile points at an optional TOML file overriding the schedule tiers.
const EnvTierFile = "REVIEWCRON_CONFIG"

// EnvTextfileDir points at a node-exporter textfile collector directory.
// When set, the registrar drops install metrics there after each run.
const EnvTextfileDir = "REVIEWCRON_TEXTFILE_DIR"

// EnvLogLevel and EnvLogFormat configure the registrar's own diagnostics,
// not the job log (the job appends to its log file regardless).
const (
	EnvLogLevel  = "REVIEWCRON_LOG_LEVEL"
	EnvLogFormat = "REVIEWCRON_LOG_FORMAT"
)

// EnvTelegramToken and EnvTelegramChatID enable the optional install
// notification. Both must be set; otherwise notification is skipped.
const (
	EnvTelegramToken  = "TELEGRAM_BOT_TOKEN"
	EnvTelegramChatID = "TELEGRAM_CHAT_ID"
)
