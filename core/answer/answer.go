// Package answer provides the constant printed after the port line.
package answer

// Value always returns 42.
func Value() int {
	return 42
}
