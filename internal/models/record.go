package models

import (
	"vendoriq/internal/schema"
)

// Record is one normalized purchase-order line item. After normalization
// every canonical field is present: text fields default to the empty string
// and numeric fields to 0, so a Record never carries nulls.
type Record struct {
	PODate      string `json:"po_dt"`
	PONumber    string `json:"po_no"`
	Supplier    string `json:"supplier"`
	Item        string `json:"item"`
	HSN         string `json:"hsn_no"`
	Description string `json:"item_description"`
	IndentDate  string `json:"indent_dt"`
	IndentNo    string `json:"indent_no"`
	UOM         string `json:"uom"`

	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Material float64 `json:"material"`
	Excise   float64 `json:"excise"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Freight  float64 `json:"freight"`
	Others   float64 `json:"others"`
	Net      float64 `json:"net"`

	// Extras holds source columns that are not part of the canonical schema,
	// keyed by trimmed header. Column order lives on the owning dataset.
	Extras map[string]string `json:"extras,omitempty"`
}

// Text returns the value of a canonical text column.
func (r *Record) Text(col string) string {
	switch col {
	case schema.ColPODate:
		return r.PODate
	case schema.ColPONumber:
		return r.PONumber
	case schema.ColSupplier:
		return r.Supplier
	case schema.ColItem:
		return r.Item
	case schema.ColHSN:
		return r.HSN
	case schema.ColDescription:
		return r.Description
	case schema.ColIndentDate:
		return r.IndentDate
	case schema.ColIndentNo:
		return r.IndentNo
	case schema.ColUOM:
		return r.UOM
	}
	return ""
}

// SetText assigns a canonical text column.
func (r *Record) SetText(col, v string) {
	switch col {
	case schema.ColPODate:
		r.PODate = v
	case schema.ColPONumber:
		r.PONumber = v
	case schema.ColSupplier:
		r.Supplier = v
	case schema.ColItem:
		r.Item = v
	case schema.ColHSN:
		r.HSN = v
	case schema.ColDescription:
		r.Description = v
	case schema.ColIndentDate:
		r.IndentDate = v
	case schema.ColIndentNo:
		r.IndentNo = v
	case schema.ColUOM:
		r.UOM = v
	}
}

// Numeric returns the value of a canonical numeric column.
func (r *Record) Numeric(col string) float64 {
	switch col {
	case schema.ColQuantity:
		return r.Quantity
	case schema.ColRate:
		return r.Rate
	case schema.ColMaterial:
		return r.Material
	case schema.ColExcise:
		return r.Excise
	case schema.ColDiscount:
		return r.Discount
	case schema.ColTax:
		return r.Tax
	case schema.ColFreight:
		return r.Freight
	case schema.ColOthers:
		return r.Others
	case schema.ColNet:
		return r.Net
	}
	return 0
}

// SetNumeric assigns a canonical numeric column.
func (r *Record) SetNumeric(col string, v float64) {
	switch col {
	case schema.ColQuantity:
		r.Quantity = v
	case schema.ColRate:
		r.Rate = v
	case schema.ColMaterial:
		r.Material = v
	case schema.ColExcise:
		r.Excise = v
	case schema.ColDiscount:
		r.Discount = v
	case schema.ColTax:
		r.Tax = v
	case schema.ColFreight:
		r.Freight = v
	case schema.ColOthers:
		r.Others = v
	case schema.ColNet:
		r.Net = v
	}
}

// ReconciledNet is the derived Net formula used when the source supplied no
// nonzero Net: Material + Excise - Discount + Tax + Freight + Others.
func (r *Record) ReconciledNet() float64 {
	return r.Material + r.Excise - r.Discount + r.Tax + r.Freight + r.Others
}

// Dataset is the session's accumulated, normalized working table. Records
// keep upload order; ExtraColumns lists non-canonical source columns in
// first-seen order and is shared by every export.
type Dataset struct {
	Records      []Record `json:"records"`
	ExtraColumns []string `json:"extra_columns,omitempty"`
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}
