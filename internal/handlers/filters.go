// Package handlers exposes the spend-analysis pipeline over HTTP. Handlers
// stay thin: they parse filter parameters, call into the core packages and
// shape JSON responses.
package handlers

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"vendoriq/internal/format"
	"vendoriq/internal/models"
	"vendoriq/internal/query"
	"vendoriq/internal/schema"
)

// FilterParams are the shared query parameters accepted by every view
// endpoint.
type FilterParams struct {
	Search      string `query:"q"`
	TableSearch string `query:"table_q"`
	Suppliers   string `query:"suppliers"`
	Supplier    string `query:"supplier"`
	ItemQuery   string `query:"item"`
	NetMin      string `query:"net_min"`
	NetMax      string `query:"net_max"`
	Sort        string `query:"sort"`
}

// parseFilter binds the shared filter parameters. Unparseable numeric
// bounds fall back to zero, which the range filter treats as unconstrained.
func parseFilter(c echo.Context) (*query.Filter, string, error) {
	var p FilterParams
	if err := c.Bind(&p); err != nil {
		return nil, "", echo.NewHTTPError(400, "Invalid query parameters")
	}

	f := &query.Filter{
		Search:      p.Search,
		TableSearch: p.TableSearch,
		Supplier:    p.Supplier,
		ItemQuery:   p.ItemQuery,
		NetMin:      parseFloat(p.NetMin),
		NetMax:      parseFloat(p.NetMax),
	}
	if s := strings.TrimSpace(p.Suppliers); s != "" {
		for _, name := range strings.Split(s, ",") {
			if name = strings.TrimSpace(name); name != "" {
				f.Suppliers = append(f.Suppliers, name)
			}
		}
	}
	return f, p.Sort, nil
}

// baseFilter strips the in-table clauses, leaving the global portion used
// for KPI and chart scoping.
func baseFilter(f *query.Filter) *query.Filter {
	base := *f
	base.TableSearch = ""
	base.Supplier = ""
	return &base
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// displayRows renders records with presentation formatting: money columns
// in full rupee format, Quantity as a grouped integer, text verbatim.
func displayRows(ds *models.Dataset) []map[string]string {
	rows := make([]map[string]string, 0, len(ds.Records))
	for i := range ds.Records {
		rec := &ds.Records[i]
		row := make(map[string]string, len(schema.Columns)+len(ds.ExtraColumns))
		for _, col := range schema.Columns {
			switch {
			case col == schema.ColQuantity:
				row[col] = format.Integer(rec.Quantity)
			case schema.IsNumeric(col):
				row[col] = format.Full(rec.Numeric(col))
			default:
				row[col] = rec.Text(col)
			}
		}
		for _, col := range ds.ExtraColumns {
			row[col] = rec.Extras[col]
		}
		rows = append(rows, row)
	}
	return rows
}
