package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/homecmd/internal/config"
)

// LogOpts are the logging flags shared by commands.
type LogOpts struct {
	LogOutputFile string `short:"l" long:"log-output-file" description:"additionally log to the given file" value-name:"<file>"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// baseDirPath returns the directory holding homecmd's config file, which is
// ${HOMECMD_HOME} or, if unset, ${HOME}/.config/homecmd.
func baseDirPath() string {
	homecmdHome := os.Getenv("HOMECMD_HOME")
	if homecmdHome == "" {
		return filepath.Join(os.Getenv("HOME"), ".config", "homecmd")
	}
	return strings.TrimRight(homecmdHome, "/")
}

// loadConfig reads the config file and augments the defaults of the given
// theme with it. A missing config file is not an error.
func loadConfig(theme config.ColorschemeType) (config.Config, error) {
	path := filepath.Join(baseDirPath(), "config.yaml")
	yamlData, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return configData, fmt.Errorf("can't parse config file '%s': %w", path, err)
	}
	return configData, nil
}

// logger returns a logger writing to the given writers and, if requested, to
// the log output file. The returned closer closes that file.
func (o LogOpts) logger(writers ...io.Writer) (zerolog.Logger, func(), error) {
	closer := func() {}
	if o.LogOutputFile != "" {
		file, err := os.OpenFile(o.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("could not open file '%s' for logging: %w", o.LogOutputFile, err)
		}
		closer = func() { file.Close() }
		if o.LogPretty {
			writers = append(writers, zerolog.ConsoleWriter{Out: file, NoColor: true})
		} else {
			writers = append(writers, file)
		}
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger(), closer, nil
}
