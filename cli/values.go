package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"pfeifer.dev/controlsd/cereal/custom"
)

var logLevels = []string{"debug", "info", "warn", "error"}

func parseBool(value string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, errors.Errorf("%q is not true or false", value)
	}
	return b, nil
}

func parseFloat(value string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 32)
	if err != nil {
		return 0, errors.Errorf("%q is not a number", value)
	}
	return float32(f), nil
}

func parseLogLevel(value string) (string, error) {
	level := strings.ToLower(strings.TrimSpace(value))
	for _, l := range logLevels {
		if l == level {
			return level, nil
		}
	}
	return "", errors.Errorf("%q is not one of %s", value, strings.Join(logLevels, ", "))
}

func setInputValue(input custom.ControlsdIn, settingType SettingType, value string) error {
	switch settingType {
	case String:
		level, err := parseLogLevel(value)
		if err != nil {
			return err
		}
		return input.SetStr(level)
	case Bool:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		input.SetBool(b)
	case Float:
		f, err := parseFloat(value)
		if err != nil {
			return err
		}
		input.SetFloat(f)
	}
	return nil
}
