package model

import (
	"fmt"
	"strings"
)

// Switch is an ON/OFF command line value.
type Switch bool

const (
	On  Switch = true
	Off Switch = false
)

var switchName = map[string]Switch{
	"on":   On,
	"1":    On,
	"true": On,

	"off":   Off,
	"0":     Off,
	"false": Off,
}

func ParseSwitch(s string) (Switch, error) {
	v, c := switchName[strings.ToLower(strings.TrimSpace(s))]
	if !c {
		return Off, fmt.Errorf("invalid switch %q, want ON or OFF", s)
	}
	return v, nil
}

func (s Switch) String() string {
	if s {
		return "ON"
	}
	return "OFF"
}

// Set and String make *Switch a flag.Value.
func (s *Switch) Set(v string) (err error) {
	*s, err = ParseSwitch(v)
	return
}
