package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode - значение флагов --ui и --color.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readMode(flag, value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on", "always":
		return uiModeOn, nil
	case "off", "never":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
	}
}

func readUIMode(value string) (uiMode, error) {
	return readMode("ui", value)
}

// enabledFor resolves auto against whether f is a terminal.
func (m uiMode) enabledFor(f *os.File) bool {
	switch m {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(f)
	}
}

func shouldUseTUI(mode uiMode) bool {
	return mode.enabledFor(os.Stdout)
}

func colorEnabled(value string, f *os.File) (bool, error) {
	mode, err := readMode("color", value)
	if err != nil {
		return false, err
	}
	return mode.enabledFor(f), nil
}
