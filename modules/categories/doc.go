// Package categories manages the part category tree.
package categories
