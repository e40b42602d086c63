package env

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

var LogLevel string = "info,std"
var LogClean int = 3
var Console bool = false

func logConfig(config *Config) {
	LogLevel = config.GetString("logLevel", "info,std")
	LogClean = config.GetRangeInt("logClean", 0, 50000, 3)
	Console = config.GetBool("console", false)
}

// InitLog configures log. With "std" in the level string, or in console
// mode, entries go to stdout; otherwise to a file under logHome/log rotated
// once a day.
func InitLog(logHome string, prefix string, log *logrus.Logger) {
	format := &Formatter{NoPrefix: false}
	lv, std := ParseLevel(LogLevel)
	logFileName := filepath.Join(logHome, "log", prefix)
	log.SetFormatter(format)
	log.SetLevel(lv)
	if std || Console {
		log.SetOutput(os.Stdout)
		return
	}
	os.MkdirAll(filepath.Join(logHome, "log"), os.ModePerm)
	hook, err := NewHook(logFileName, format)
	if err != nil {
		log.SetOutput(os.Stdout)
		log.Warnf("[Init]Log file %s ERR:%s\n", logFileName, err)
		return
	}
	log.SetOutput(ioutil.Discard)
	log.AddHook(hook)
	clearLog(logFileName, prefix)
}

func clearLog(logName string, prefix string) {
	if LogClean < 1 {
		return
	}
	logs := []string{filepath.Base(logName)}
	cur := time.Now()
	for ii := 0; ii < LogClean; ii++ {
		name := logName + "." + cur.Format("20060102")
		logs = append(logs, filepath.Base(name))
		cur = cur.Add(-time.Hour * 24)
	}
	dir := filepath.Dir(logName)
	l, err := ioutil.ReadDir(dir)
	if err != nil {
		return
	}
	for _, f := range l {
		if strings.HasPrefix(f.Name(), prefix) {
			del := true
			for _, n := range logs {
				if n == f.Name() {
					del = false
					break
				}
			}
			if del {
				os.Remove(filepath.Join(dir, f.Name()))
			}
		}
	}
}

// TraceError logs the stack of every goroutine line by line.
func TraceError(log *logrus.Logger, prefix string) string {
	stack := make([]byte, 8192)
	length := runtime.Stack(stack, true)
	ss := string(stack[0:length])
	for _, s := range strings.Split(ss, "\n") {
		log.Error(prefix + s + "\n")
	}
	return ss
}

func NewLogger(name string) *logrus.Logger {
	std := logrus.StandardLogger()
	log := &logrus.Logger{
		Out:          std.Out,
		Hooks:        make(logrus.LevelHooks),
		Level:        std.Level,
		ExitFunc:     std.ExitFunc,
		ReportCaller: std.ReportCaller,
	}
	for lv, hooks := range std.Hooks {
		log.Hooks[lv] = append(log.Hooks[lv], hooks...)
	}
	prefix := ""
	if name != "" {
		prefix = "[" + name + "]"
	}
	log.SetFormatter(&Formatter{NoPrefix: false, Prefix: prefix})
	return log
}

func NewHook(logName string, format *Formatter) (logrus.Hook, error) {
	writer, err := rotatelogs.New(
		logName+".%Y%m%d",
		rotatelogs.WithRotationTime(time.Hour*24),
		rotatelogs.WithLinkName(logName),
	)
	if err != nil {
		return nil, err
	}
	lfsHook := lfshook.NewHook(lfshook.WriterMap{
		logrus.TraceLevel: writer,
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
		logrus.PanicLevel: writer,
	}, format)
	return lfsHook, nil
}

type Formatter struct {
	NoPrefix bool
	Prefix   string
}

// ParseLevel reads a level name and the "std" switch out of lvl,
// e.g. "debug,std". Unknown names mean trace.
func ParseLevel(lvl string) (logrus.Level, bool) {
	s := strings.ToLower(lvl)
	var lv logrus.Level
	if strings.Contains(s, "panic") {
		lv = logrus.PanicLevel
	} else if strings.Contains(s, "fatal") {
		lv = logrus.FatalLevel
	} else if strings.Contains(s, "error") {
		lv = logrus.ErrorLevel
	} else if strings.Contains(s, "warn") {
		lv = logrus.WarnLevel
	} else if strings.Contains(s, "info") {
		lv = logrus.InfoLevel
	} else if strings.Contains(s, "debug") {
		lv = logrus.DebugLevel
	} else {
		lv = logrus.TraceLevel
	}
	return lv, strings.Contains(s, "std")
}

func GetLevelString(level logrus.Level) string {
	switch level {
	case logrus.TraceLevel:
		return "Trace"
	case logrus.DebugLevel:
		return "Debug"
	case logrus.InfoLevel:
		return "Infos"
	case logrus.WarnLevel:
		return "Warns"
	case logrus.ErrorLevel:
		return "Error"
	case logrus.FatalLevel:
		return "Fatal"
	case logrus.PanicLevel:
		return "Panic"
	}
	return "Debug"
}

const TimestampFormat = "15:04:05.000"
const FormatString = "[%s][%s]%s%s"

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	if f.NoPrefix {
		if strings.HasSuffix(entry.Message, "\n") {
			return []byte(entry.Message), nil
		}
		return []byte(entry.Message + "\n"), nil
	}
	output := FormatString
	if !strings.HasSuffix(entry.Message, "\n") {
		output = FormatString + "\n"
	}
	output = fmt.Sprintf(output, entry.Time.Format(TimestampFormat), GetLevelString(entry.Level), f.Prefix, entry.Message)
	return []byte(output), nil
}
