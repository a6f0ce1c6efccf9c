// Package plparser parses quarterly profit-and-loss statement exports into
// structured quarter summaries and rolls them up into the P&L views of the
// dashboard.
//
// A statement arrives as an ordered list of two-column label/value rows with
// "Income" / "Expenses" section markers and "Total for ..." subtotal lines.
// The parser walks the rows with a small state machine and routes each
// expense line through an ordered classification table; a handful of
// categories honor the statement's own subtotal line over the itemized sum,
// because some exports list both and naive summation would double count.
package plparser
