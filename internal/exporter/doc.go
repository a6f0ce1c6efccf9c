// Package exporter writes the processed load records and profit-and-loss
// summaries to CSV and JSON report files under the reports directory.
//
// CSV files are written with a UTF-8 BOM so Excel opens them correctly;
// the JSON reports are consumed by the web dashboard.
package exporter
