// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download target - overrides the directory stored in the programs file.
const (
	DownloadDirectory = "download.directory"
)

// Downloader behaviour.
const (
	DownloaderAttempts      = "downloader.attempts"
	DownloaderRetryDelay    = "downloader.retry_delay"
	DownloaderTimeout       = "downloader.timeout"
	DownloaderLargeTimeout  = "downloader.large_timeout"
	DownloaderLargeHosts    = "downloader.large_hosts"
	DownloaderLargePrograms = "downloader.large_programs"
	DownloaderYtdlpPath     = "downloader.ytdlp_path"
	DownloaderProgress      = "downloader.progress"
)

// Programs file location and the fallback list used when it has no enabled entries.
const (
	ProgramsFile         = "programs.file"
	ProgramsFallbackURLs = "programs.fallback_urls"
)

// Scraping sessions.
const (
	ScraperTimeout        = "scraper.timeout"
	ScraperTLSFingerprint = "scraper.tls_fingerprint"
)

// History ledger.
const (
	HistorySaveOnDownload = "history.save_on_download"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
