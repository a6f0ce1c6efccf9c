// Package services contains the application service layer. ReportService
// orchestrates the full ingest pipeline: the OTR registry workbook, the
// per-load profitability exports and the quarterly Profit and Loss
// statements, and assembles the dashboard and P&L reports the transport and
// exporter layers consume.
package services
