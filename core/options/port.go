package options

import (
	"strconv"

	"github.com/spf13/pflag"
)

var _ pflag.Value = (*PortValue)(nil)

// PortValue is a flag value holding a port written in plain decimal.
// Leading zeros are ignored; base prefixes, signs and digit separators are rejected.
type PortValue struct {
	port *uint16
}

// NewPortValue stores def in p and returns a flag value writing to p.
func NewPortValue(def uint16, p *uint16) *PortValue {
	*p = def
	return &PortValue{port: p}
}

func (v *PortValue) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return err
	}
	*v.port = uint16(n)
	return nil
}

func (v *PortValue) Type() string {
	return "uint16"
}

func (v *PortValue) String() string {
	if v == nil || v.port == nil {
		return "0"
	}
	return strconv.FormatUint(uint64(*v.port), 10)
}
