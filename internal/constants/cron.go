package constants

// Cron constants: job identity, managed-entry marker, and schedule tiers.

// JobName identifies the review-processing job in markers, journal records
// and operator output.
const JobName = "process-reviews"

// JobEntryPoint is the management command the crontab entry invokes. It is
// also the legacy identifying substring: entries installed by the retired
// shell script carry no marker and are recognized (and replaced) by this
// fragment alone.
const JobEntryPoint = "manage.py process_reviews"

// MarkerPrefix starts the trailing comment that tags crontab lines managed
// by reviewcron. A full marker is MarkerPrefix + job name, e.g.
// "# reviewcron:process-reviews".
const MarkerPrefix = "# reviewcron:"

// ModeProduction is the only environment value with a dedicated tier.
const ModeProduction = "production"

// ModeDevelopment is the default environment mode.
const ModeDevelopment = "development"

// ScheduleProduction runs the job daily at 02:00.
const ScheduleProduction = "0 2 * * *"

// ScheduleDevelopment runs the job every 5 minutes for fast feedback.
const ScheduleDevelopment = "*/5 * * * *"
