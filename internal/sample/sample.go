// Package sample generates a deterministic demo dataset so the portal can
// be explored before any upload.
package sample

import (
	"fmt"
	"math"
	"math/rand"

	"vendoriq/internal/models"
)

var (
	suppliers = []string{
		"Tata Steel Ltd", "Reliance Industries", "Mahindra Logistics",
		"Bosch India Pvt Ltd", "Siemens Ltd", "L&T Engineering",
		"BHEL Corporation", "Wipro Infrastructure", "HCL Manufacturing",
		"Infosys Supply",
	}
	items = []string{
		"Cold Rolled Sheets", "Hot Rolled Coils", "Stainless Steel Pipes",
		"Aluminium Extrusions", "Copper Cables", "PVC Conduits",
		"MS Angles", "GI Sheets", "Carbon Steel Rods", "Mild Steel Plates",
	}
	hsns = []string{"7209", "7208", "7306", "7601", "8544", "3917", "7216", "7210", "7213", "7211"}
	uoms = []string{"MT", "NOS", "KG", "MTR", "SET", "BOX", "PCS", "LTR", "RLL", "CTN"}
)

const rows = 150

// Dataset builds the 150-row demo dataset. The generator is seeded, so
// every call yields the same records; Net always satisfies the
// reconciliation formula.
func Dataset() *models.Dataset {
	rng := rand.New(rand.NewSource(42))
	ds := &models.Dataset{Records: make([]models.Record, 0, rows)}

	for i := 0; i < rows; i++ {
		si := rng.Intn(10)
		ii := rng.Intn(10)
		qty := float64(rng.Intn(491) + 10)
		rate := float64(rng.Intn(5801) + 200)
		mat := qty * rate
		tax := round2(mat * 0.18)
		disc := round2(mat * 0.03)
		frgt := float64(rng.Intn(5501) + 500)
		oth := float64(rng.Intn(1401) + 100)
		net := round2(mat + tax - disc + frgt + oth)

		d := rng.Intn(28) + 1
		m := rng.Intn(12) + 1
		y := 2023 + rng.Intn(2)
		date := fmt.Sprintf("%02d/%02d/%d", d, m, y)

		ds.Records = append(ds.Records, models.Record{
			PODate:      date,
			PONumber:    fmt.Sprintf("PO-%05d", 2000+i),
			Supplier:    suppliers[si],
			Item:        fmt.Sprintf("ITM-%04d", 1000+ii),
			HSN:         hsns[ii],
			Description: items[ii],
			IndentDate:  date,
			IndentNo:    fmt.Sprintf("IN-%05d", 3000+i),
			UOM:         uoms[rng.Intn(10)],
			Quantity:    qty,
			Rate:        rate,
			Material:    mat,
			Excise:      0,
			Discount:    disc,
			Tax:         tax,
			Freight:     frgt,
			Others:      oth,
			Net:         net,
		})
	}
	return ds
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
