// Package benchmark holds the fee table behind the competitor comparison
// chart: one row per actor with a credit, debit and interoperable QR rate.
//
// The table is melted into long format ([Observation]) before drawing, and
// every observation carries the color picked by [ColorFor]:
//
//	t := benchmark.Default()
//	rows := t.Melt(palette.Paymee)
//
// Rates are percentages (3.9 means 3.9 %).
package benchmark
