package env

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	ConfFile    = "huffenc.properties"
	ConfSection = "huffenc"
	LogPrefix   = "huffenc.log"
)

// Settings are the values one encoding run needs.
type Settings struct {
	InputPath  string
	OutputPath string
	Report     bool
}

// Home resolves the working directory: $HUFFENC_HOME, or the directory of
// the executable.
func Home() string {
	home := os.Getenv("HUFFENC_HOME")
	if home == "" {
		dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
		if err == nil {
			home = dir
		}
	}
	return home
}

// LoadSettings reads home/conf/huffenc.properties. A missing file is not an
// error, every key then takes its environment value or default. Relative
// paths are resolved against home.
func LoadSettings(home string) (*Settings, *Config, error) {
	path := filepath.Join(home, "conf", ConfFile)
	config, err := NewConfig(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, nil, errors.Wrapf(err, "read config %s", path)
		}
		config = EmptyConfig()
	}
	config.SetSection(ConfSection)
	s := &Settings{
		InputPath:  resolve(home, config.GetString("inputPath", "D2.txt")),
		OutputPath: resolve(home, config.GetString("outputPath", "encode.bin")),
		Report:     config.GetBool("report", true),
	}
	return s, config, nil
}

func resolve(home, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(home, p)
}

// InitEncoder loads the settings and configures the standard logger.
func InitEncoder() (*Settings, error) {
	home := Home()
	s, config, err := LoadSettings(home)
	if err != nil {
		InitLog(home, LogPrefix, logrus.StandardLogger())
		logrus.Errorf("[Init]%s\n", err)
		return nil, err
	}
	logConfig(config)
	InitLog(home, LogPrefix, logrus.StandardLogger())
	logrus.Infof("[Init]Home %s, input %s, output %s\n", home, s.InputPath, s.OutputPath)
	return s, nil
}
