// Package parts manages the electronic part inventory: stock counts, prices,
// and references to manufacturer, package, and category entities.
package parts
