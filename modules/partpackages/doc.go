// Package partpackages manages the physical part package catalog, for
// example SOT-23 or DIP-8 footprints.
package partpackages
