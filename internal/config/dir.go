package config

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

const APP_NAME = "minicc"

var DEFAULT_ENV_FILE string = `M_PROMPT=>> 
M_SEMICOLON=strict
M_ANALYZE=on
M_CLANG=clang
M_OPT=opt
`

//go:embed dev.env
var DEFAULT_DEV_ENV_FILE string

var (
	DEV        bool
	DEBUG_MODE bool
)

var MINICC_CONFIG_DIR string

var ENVS *Envs

func SetDevMode(dev bool) {
	DEV = dev
	DEBUG_MODE = dev
}

type Envs struct {
	PROMPT    string `env:"M_PROMPT"`
	SEMICOLON string `env:"M_SEMICOLON"`
	ANALYZE   string `env:"M_ANALYZE"`
	CLANG     string `env:"M_CLANG"`
	OPT       string `env:"M_OPT"`
}

// Defaults returns the settings used when no env file overrides them.
func Defaults() *Envs {
	return &Envs{
		PROMPT:    ">> ",
		SEMICOLON: "strict",
		ANALYZE:   "on",
		CLANG:     "clang",
		OPT:       "opt",
	}
}

// RequireSemicolon is false only for M_SEMICOLON=optional.
func (e *Envs) RequireSemicolon() bool {
	return !strings.EqualFold(e.SEMICOLON, "optional")
}

// Analyze is false only for M_ANALYZE=off.
func (e *Envs) Analyze() bool {
	return !strings.EqualFold(e.ANALYZE, "off")
}

func (e *Envs) Lines() []string {
	v := reflect.ValueOf(e)

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	var lines []string
	for i := range v.NumField() {
		field := v.Type().Field(i)
		fieldValue := v.Field(i)

		envTag := field.Tag.Get("env")
		if envTag != "" {
			lines = append(lines, fmt.Sprintf("%s='%s'", envTag, fieldValue.String()))
		}
	}
	return lines
}

func SetupConfigDir() error {
	cfgDir, err := getConfigDir(APP_NAME)
	if err != nil {
		return err
	}
	MINICC_CONFIG_DIR = cfgDir
	return nil
}

func SetupEnvFile() error {
	envs, err := LoadEnvs(filepath.Join(MINICC_CONFIG_DIR, "env"))
	if err != nil {
		return err
	}
	ENVS = envs
	return nil
}

// LoadEnvs reads the env file at path, creating it with the default contents
// when missing, and lays the values over Defaults.
func LoadEnvs(path string) (*Envs, error) {
	envs, err := loadEnvFile(path)
	if err != nil {
		return nil, err
	}

	parsedEnvs := Defaults()
	err = MapEnvToStruct(envs, parsedEnvs)
	if err != nil {
		return nil, err
	}
	return parsedEnvs, nil
}

func getConfigDir(appName string) (string, error) {
	var configDir string

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		configDir = filepath.Join(configHome, appName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		if os.Getenv("OS") == "Windows_NT" {
			configDir = filepath.Join(os.Getenv("APPDATA"), appName)
		} else {
			configDir = filepath.Join(homeDir, ".config", appName)
		}
	} else {
		return "", fmt.Errorf("could not determine home directory")
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}

func loadEnvFile(path string) (map[string]string, error) {
	_, err := os.Stat(path)
	envFileCreated := os.IsNotExist(err)
	if err != nil && !envFileCreated {
		return nil, err
	}

	// NOTE: in development mode the env file is always rewritten so edits to
	// dev.env take effect on the next run
	if DEV {
		envFileCreated = true
	}

	if envFileCreated {
		content := DEFAULT_ENV_FILE
		if DEV {
			content = DEFAULT_DEV_ENV_FILE
		}
		if err := writeStringToFile(path, content); err != nil {
			return nil, err
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseEnv(bufio.NewScanner(file))
}

func parseEnv(scanner *bufio.Scanner) (map[string]string, error) {
	env := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t")

		if len(strings.TrimSpace(line)) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimLeft(parts[1], " \t")
		// the prompt keeps its trailing space, everything else is trimmed
		if key != "M_PROMPT" {
			value = strings.TrimSpace(value)
		}
		env[key] = value
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return env, nil
}

func writeStringToFile(fileName, content string) error {
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString(content)
	return err
}

func MapEnvToStruct(data map[string]string, result any) error {
	v := reflect.ValueOf(result)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("MapEnvToStruct: expected pointer to struct, got %T", result)
	}
	v = v.Elem()
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		fieldValue := v.Field(i)

		envTag := field.Tag.Get("env")
		if envTag != "" {
			if value, ok := data[envTag]; ok {
				if fieldValue.CanSet() && fieldValue.Kind() == reflect.String {
					fieldValue.SetString(value)
				}
			}
		}
	}

	return nil
}
