package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/Enryuk3/kash-app/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

type levelStyle struct {
	label string
	color lipgloss.AdaptiveColor
}

var levelStyles = map[log.Level]levelStyle{
	log.DebugLevel: {"DBG", lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#B39DDB"}},
	log.InfoLevel:  {"INF", lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}},
	log.WarnLevel:  {"WRN", lipgloss.AdaptiveColor{Light: "#F5A623", Dark: "#F5A623"}},
	log.ErrorLevel: {"ERR", lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}},
}

var formatters = map[string]log.Formatter{
	"json":   log.JSONFormatter,
	"text":   log.TextFormatter,
	"logfmt": log.LogfmtFormatter,
}

func setupLogger(cfg *config.Log) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

// newLogger builds a charmbracelet handler, wraps it in slog and installs it
// as the default logger.
func newLogger(w io.Writer, cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	accent := levelStyles[log.DebugLevel].color
	for lvl, st := range levelStyles {
		styles.Levels[lvl] = lipgloss.NewStyle().
			SetString(st.label).
			Bold(true).
			Padding(0, 1).
			Foreground(st.color)
	}
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(levelStyles[log.ErrorLevel].color)
	styles.Values["error"] = lipgloss.NewStyle().Bold(true)
	for _, k := range []string{"user_id", "request_id", "context"} {
		styles.Keys[k] = lipgloss.NewStyle().Foreground(accent)
		styles.Values[k] = lipgloss.NewStyle().Bold(true)
	}

	formatter := log.TextFormatter
	if f, ok := formatters[cfg.Format]; ok {
		formatter = f
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(styles)

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
