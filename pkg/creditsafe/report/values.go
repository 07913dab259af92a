package report

import (
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// CellValue converts a JSON value into a spreadsheet cell value.
// Numbers become int64 when integral and float64 otherwise, strings are kept
// verbatim, null becomes blank and nested values keep their JSON text.
func CellValue(v gjson.Result) interface{} {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return parseNumber(v.Raw)
	case gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}

// parseNumber keeps large integral amounts exact.
func parseNumber(raw string) interface{} {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}
	if d.IsInteger() && d.BigInt().IsInt64() {
		return d.IntPart()
	}
	return d.InexactFloat64()
}
