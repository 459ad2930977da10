package calc

import (
	"math"

	"obralog/internal/models"
)

// MaterialLine is one itemized material with its cost normalized to a
// usable number.
type MaterialLine struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// MaterialsResult sums a report's purchased materials.
type MaterialsResult struct {
	TotalMaterialsCost float64        `json:"total_materials_cost"`
	Items              []MaterialLine `json:"material_items"`
}

// Materials totals a list of material cost entries. Malformed costs
// normalize to 0 but the item still appears in the itemized output.
// Negative costs (discounts) pass through unclamped. A nil or empty list
// yields a zero total with an empty, non-nil item list.
func Materials(items []models.MaterialItem) MaterialsResult {
	result := MaterialsResult{Items: make([]MaterialLine, 0, len(items))}
	for _, item := range items {
		cost := sanitize(item.Cost.Float())
		result.Items = append(result.Items, MaterialLine{
			Description: item.Description,
			Cost:        cost,
		})
		result.TotalMaterialsCost += cost
	}
	return result
}

// sanitize maps NaN and infinities to 0 so that one bad value can never
// poison a money total.
func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
