// Package parser reads workbook sheets into tables using excelize.
package parser
