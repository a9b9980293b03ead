// Package schema defines the canonical purchase-order column set and the
// alias table that maps heterogeneous source headers onto it.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Canonical column names. Exports and displays always emit them in this order.
const (
	ColPODate      = "PO Dt"
	ColPONumber    = "PO No"
	ColSupplier    = "Supplier"
	ColItem        = "Item"
	ColHSN         = "HSN No"
	ColDescription = "Item Description"
	ColIndentDate  = "Indent Dt"
	ColIndentNo    = "Indent No"
	ColUOM         = "UOM"
	ColQuantity    = "Quantity"
	ColRate        = "Rate"
	ColMaterial    = "Material"
	ColExcise      = "Excise"
	ColDiscount    = "Discount"
	ColTax         = "Tax"
	ColFreight     = "Freight"
	ColOthers      = "Others"
	ColNet         = "Net"
)

// Columns is the canonical column order.
var Columns = []string{
	ColPODate, ColPONumber, ColSupplier, ColItem, ColHSN, ColDescription,
	ColIndentDate, ColIndentNo, ColUOM, ColQuantity, ColRate,
	ColMaterial, ColExcise, ColDiscount, ColTax, ColFreight, ColOthers, ColNet,
}

// TextColumns are the free-form string columns; "" is the missing value.
var TextColumns = []string{
	ColPODate, ColPONumber, ColSupplier, ColItem, ColHSN, ColDescription,
	ColIndentDate, ColIndentNo, ColUOM,
}

// NumericColumns coerce to float64; unparseable cells become 0.
var NumericColumns = []string{
	ColQuantity, ColRate, ColMaterial, ColExcise, ColDiscount, ColTax,
	ColFreight, ColOthers, ColNet,
}

// ColumnAliases pairs a canonical column with its accepted source-header
// spellings, in priority order.
type ColumnAliases struct {
	Column  string   `yaml:"column"`
	Aliases []string `yaml:"aliases"`
}

//go:embed aliases.yaml
var aliasesYAML []byte

var aliasTable []ColumnAliases

func init() {
	if err := yaml.Unmarshal(aliasesYAML, &aliasTable); err != nil {
		panic(fmt.Sprintf("schema: malformed aliases.yaml: %v", err))
	}
	known := make(map[string]bool, len(Columns))
	for _, c := range Columns {
		known[c] = true
	}
	for _, ca := range aliasTable {
		if !known[ca.Column] {
			panic(fmt.Sprintf("schema: aliases.yaml references unknown column %q", ca.Column))
		}
	}
}

// AliasTable returns the alias table in declaration order. Callers must not
// mutate the returned slice.
func AliasTable() []ColumnAliases {
	return aliasTable
}

// IsNumeric reports whether col is one of the nine numeric canonical columns.
func IsNumeric(col string) bool {
	switch col {
	case ColQuantity, ColRate, ColMaterial, ColExcise, ColDiscount, ColTax,
		ColFreight, ColOthers, ColNet:
		return true
	}
	return false
}

// IsCanonical reports whether col is a canonical column name (exact spelling).
func IsCanonical(col string) bool {
	for _, c := range Columns {
		if c == col {
			return true
		}
	}
	return false
}

// ResolveHeaders maps input headers onto canonical columns.
//
// Headers are trimmed; alias matching is case- and whitespace-insensitive and
// first alias wins per column. When two input headers collapse to the same
// lowered spelling the later one takes the binding. A header whose trimmed
// spelling already equals a canonical name binds to it regardless of the
// alias table. The returned slice is parallel to headers: each entry is the
// canonical column the header feeds, or "" for an extra column.
func ResolveHeaders(headers []string) []string {
	trimmed := make([]string, len(headers))
	lowered := make(map[string]int, len(headers))
	for i, h := range headers {
		trimmed[i] = strings.TrimSpace(h)
		lowered[strings.ToLower(trimmed[i])] = i
	}

	resolved := make([]string, len(headers))
	for i, t := range trimmed {
		if IsCanonical(t) {
			resolved[i] = t
		}
	}
	for _, ca := range aliasTable {
		for _, alias := range ca.Aliases {
			if idx, ok := lowered[alias]; ok {
				resolved[idx] = ca.Column
				break
			}
		}
	}
	return resolved
}
