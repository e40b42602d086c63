package env

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	prop map[string]string
	sec  string
}

// NewConfig reads a key=value properties file. Lines starting with '#'
// and lines without '=' are skipped.
func NewConfig(p string) (*Config, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	config := make(map[string]string)
	r := bufio.NewReader(f)
	for {
		b, _, err := r.ReadLine()
		if err != nil {
			break
		}
		s := strings.TrimSpace(string(b))
		if strings.HasPrefix(s, "#") {
			continue
		}
		index := strings.Index(s, "=")
		if index < 0 {
			continue
		}
		key := strings.TrimSpace(s[:index])
		if len(key) == 0 {
			continue
		}
		value := strings.TrimSpace(s[index+1:])
		config[key] = value
	}
	return &Config{prop: config}, nil
}

// EmptyConfig returns a config with no file behind it; every getter
// falls back to the environment and then to its default.
func EmptyConfig() *Config {
	return &Config{prop: make(map[string]string)}
}

// SetSection makes environment variables named "<s>.<key>" take precedence
// over the file.
func (c *Config) SetSection(s string) {
	c.sec = s
}

func (c *Config) GetString(key string, def string) string {
	var v string = ""
	if c.sec != "" {
		v = strings.TrimSpace(os.Getenv(c.sec + "." + key))
	}
	if v == "" {
		v = strings.TrimSpace(c.prop[key])
	}
	if v == "" {
		v = def
	}
	return v
}

func (c *Config) GetUpperString(key string, def string) string {
	return strings.ToUpper(c.GetString(key, def))
}

func (c *Config) GetBool(key string, def bool) bool {
	s := c.GetUpperString(key, "")
	if def {
		return !(s == "FALSE" || s == "OFF")
	}
	return s == "TRUE" || s == "ON"
}

func (c *Config) GetInt(key string, def int) int {
	s := c.GetString(key, strconv.Itoa(def))
	num, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return num
}

func (c *Config) GetRangeInt(key string, min int, max int, def int) int {
	return CheckInt(c.GetInt(key, def), min, max)
}

func CheckInt(num int, min int, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}
