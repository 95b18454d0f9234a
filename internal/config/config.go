package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Age/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Age"
	AppID             = "com.github.tartampluch.go-age"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
	ExitCodeUsage   = 2
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	CmdUse        = "go-age"
	CmdShort      = "Exact age in years, months and days (window, or headless with --birth/--vcard)"
	FlagDebug     = "debug"
	FlagBirth     = "birth"
	FlagReference = "ref"
	FlagVCard     = "vcard"
	FlagDescDebug = "Enable debug logging to stdout"
	FlagDescBirth = "Birth date (YYYY-MM-DD); prints the age and exits without opening a window"
	FlagDescRef   = "Reference date (YYYY-MM-DD), defaults to today"
	FlagDescVCard = "Read the birth date from a vCard file path or http(s) URL"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
	MsgCLIResult     = "%d %d %d\t%s\n"
	MsgCLIContact    = "%s (%s)\n"
	MsgCLIError      = "error: %v\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 720
	MainWindowHeight = 560

	// Preference Keys
	PrefLanguage   = "language"
	PrefTheme      = "theme"
	PrefServerPort = "server_port"
	PrefLastRun    = "last_run_version"

	// Theme preference values
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"

	// Result tiles
	ResultPlaceholder = "--"
	ResultTileCount   = 3

	// DateEntryMaxLen is the length of a YYYY-MM-DD string.
	DateEntryMaxLen = 10
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// SupportedThemes lists theme preference values in toggle order.
var SupportedThemes = []string{ThemeSystem, ThemeLight, ThemeDark}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle       = "win_title"
	TKeyAppSubtitle    = "app_subtitle"
	TKeyFormTitle      = "form_title"
	TKeyFormDesc       = "form_description"
	TKeyLblReference   = "lbl_reference_date"
	TKeyHelpReference  = "help_reference_date"
	TKeyLblBirth       = "lbl_birth_date"
	TKeyHelpBirth      = "help_birth_date"
	TKeyBtnCalculate   = "btn_calculate"
	TKeyBtnReset       = "btn_reset"
	TKeyLblPrivacy     = "lbl_privacy"
	TKeyResultTitle    = "result_title"
	TKeyResultEmpty    = "result_placeholder"
	TKeyResultLessDay  = "result_less_than_day"
	TKeyResultSep      = "result_separator"
	TKeyUnitYears      = "unit_years"  // Requires Count, plural
	TKeyUnitMonths     = "unit_months" // Requires Count, plural
	TKeyUnitDays       = "unit_days"   // Requires Count, plural
	TKeyTileYears      = "tile_years"
	TKeyTileMonths     = "tile_months"
	TKeyTileDays       = "tile_days"
	TKeyLblLanguage    = "lbl_language"
	TKeyLblTheme       = "lbl_theme"
	TKeyThemeSystem    = "theme_system"
	TKeyThemeLight     = "theme_light"
	TKeyThemeDark      = "theme_dark"
	TKeyBtnImport      = "btn_import_vcard"
	TKeyBtnCopyLink    = "btn_copy_calendar_link"
	TKeyNotifLinkCopy  = "notif_link_copied"
	TKeyNotifImported  = "notif_imported" // Requires Name
	TKeyLblFooter      = "lbl_footer"     // Requires Year
	TKeyEvtSummaryAge  = "event_summary_age"
	TKeyEvtSummaryBorn = "event_summary_birth"
	TKeyErrInvalid     = "err_invalid_date"
	TKeyErrFuture      = "err_future_birth_date"
	TKeyErrMissing     = "err_missing_birth_date"
	TKeyErrUnexpected  = "err_unexpected"
	TKeyErrImport      = "err_import"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18081"
	DefaultLanguage = "en"
	DefaultTheme    = ThemeSystem
	UIDSalt         = "go-age-v1-" // Salt for deterministic UID generation
	MonthsPerYear   = 12
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Age//Engine//EN"
	ICalCalName = "Birthday"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goage"

	// iCal/vCard Fields
	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropRefresh    = "REFRESH-INTERVAL"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// DateFormatISO is the only accepted input layout for calculations.
	DateFormatISO = "2006-01-02"

	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 16 * 1024 * 1024 // 16MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteCalendar       = "/birthday.ics"
	AddrSeparator       = ":"
	FormatCalendarURL   = "http://%s:%s%s"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages
// -----------------------------------------------------------------------------

// User-facing messages of the core calculator. They double as the English
// fallback when a translation is missing.
const (
	ErrInvalidDate     = "Invalid date"
	ErrFutureBirthDate = "Birth date cannot be in the future"
	ErrMissingBirth    = "Please choose your date of birth"
	ErrUnexpected      = "Unable to calculate age"
)

// Technical messages (logs and wrapped errors).
const (
	ErrPathEmpty        = "import error: location is empty"
	ErrFetcherMissing   = "internal error: network fetcher is not initialized"
	ErrNoBirthday       = "no contact with a full birth date found"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrVCardParse       = "failed to read vCard stream"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrLocNotInit       = "localizer not initialized"
	ErrCalcFailed       = "age calculation failed"
	ErrCalendarBuild    = "failed to build birthday calendar"
	ErrImportFailed     = "vCard import failed"
	ErrFlagBirthMissing = "--ref needs a birth date from --birth or --vcard"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "No birthday calculated yet, please try again later."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackLessThanDay  = "Less than a day old"
	FallbackSeparator    = ", "
	FallbackSummaryAge   = "Birthday (%d)"
	FallbackSummaryBirth = "Birth"
	FallbackName         = "Unknown"
	FallbackYear         = "%d year"
	FallbackYears        = "%d years"
	FallbackMonth        = "%d month"
	FallbackMonths       = "%d months"
	FallbackDay          = "%d day"
	FallbackDays         = "%d days"

	// StubVCalendar is the minimal valid iCalendar object used when no events are produced.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	TitleStartupError = "Startup Error"
	MsgPortBusy       = "Port %s is busy or unavailable."

	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgCacheCleared  = "Calendar cache cleared"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgAgeComputed   = "Age computed"
	MsgCalcRejected  = "Calculation rejected"
	MsgStateReset    = "Calculator reset"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping unusable birth date"
	MsgImportStarted = "Importing vCard"
	MsgImportDone    = "Birth date imported"
	MsgThemeChanged  = "Theme changed"
	MsgLangChanged   = "Language changed"
	MsgCalendarBuilt = "Birthday calendar generated"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyTheme     = "theme"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyLocation  = "location"
	LogKeyReference = "reference_date"
	LogKeyDOB       = "date_of_birth"
	LogKeyYears     = "years"
	LogKeyMonths    = "months"
	LogKeyDays      = "days"
	LogKeyEvents    = "events"
	LogKeyDuration  = "duration_ms"
	LogKeyCards     = "cards_seen"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompEngine   = "engine"
	CompServer   = "server"
	CompFetcher  = "fetcher"
	CompImporter = "importer"
	CompMain     = "main"
	CompI18n     = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
)
