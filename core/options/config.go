package options

import "strconv"

// DefaultPort is used when no port flag is supplied.
const DefaultPort uint16 = 8080

// Config is the parsed command-line input.
type Config struct {
	// Port is the port value given by -p/--port. It is never bound.
	Port uint16
}

// Default returns the configuration used when no flags are supplied.
func Default() Config {
	return Config{Port: DefaultPort}
}

// PortString returns the port in decimal form.
func (c Config) PortString() string {
	return strconv.FormatUint(uint64(c.Port), 10)
}
