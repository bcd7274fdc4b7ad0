// Package manufacturers manages the part manufacturer directory.
package manufacturers
