package share

// Level represents logging levels
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelSuccess // Success level for positive outcomes
	LevelWarn
	LevelError
	LevelFatal
	LevelPanic
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelPanic:
		return "PANIC"
	default:
		return "UNKNOWN"
	}
}

// ShortString returns a shorter version of the level string
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelSuccess:
		return "SUC"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FAT"
	case LevelPanic:
		return "PAN"
	default:
		return "UNK"
	}
}

// Emoji returns an emoji representation for each level
func (l Level) Emoji() string {
	switch l {
	case LevelTrace:
		return "ğŸ”"
	case LevelDebug:
		return "ğŸ›"
	case LevelInfo:
		return "â„¹ï¸"
	case LevelSuccess:
		return "âœ…"
	case LevelWarn:
		return "âš ï¸"
	case LevelError:
		return "âŒ"
	case LevelFatal:
		return "ğŸ’€"
	case LevelPanic:
		return "ğŸš¨"
	default:
		return "â“"
	}
}

// Icon returns a simplified icon for each level
func (l Level) Icon() string {
	switch l {
	case LevelTrace:
		return "â€¢"
	case LevelDebug:
		return "â—¦"
	case LevelInfo:
		return "â—"
	case LevelSuccess:
		return "âœ“"
	case LevelWarn:
		return "!"
	case LevelError:
		return "âœ—"
	case LevelFatal:
		return "â€ "
	case LevelPanic:
		return "â€¼"
	default:
		return "?"
	}
}
