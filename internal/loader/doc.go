// Package loader reads delimited employee files into rows.
//
// The loader performs no row-shape validation: it returns every record of the
// file, header included, in file order. Downstream consumers decide what a
// row means.
package loader
