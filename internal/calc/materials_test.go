package calc

import (
	"encoding/json"
	"testing"

	"obralog/internal/models"
)

func TestMaterials(t *testing.T) {
	t.Run("sums_costs", func(t *testing.T) {
		items := []models.MaterialItem{
			{Description: "Cement", Cost: 120.50},
			{Description: "Sand", Cost: 35},
			{Description: "Rebar", Cost: 250.25},
		}
		got := Materials(items)
		if got.TotalMaterialsCost != 405.75 {
			t.Errorf("total = %v, want 405.75", got.TotalMaterialsCost)
		}
		if len(got.Items) != 3 {
			t.Fatalf("itemized count = %d, want 3", len(got.Items))
		}
		if got.Items[0].Description != "Cement" || got.Items[0].Cost != 120.50 {
			t.Errorf("first item = %+v", got.Items[0])
		}
	})

	t.Run("negative_costs_pass_through", func(t *testing.T) {
		items := []models.MaterialItem{
			{Description: "Bricks", Cost: 300},
			{Description: "Supplier discount", Cost: -50},
		}
		if got := Materials(items).TotalMaterialsCost; got != 250 {
			t.Errorf("total = %v, want 250", got)
		}
	})

	t.Run("empty_and_nil", func(t *testing.T) {
		for _, items := range [][]models.MaterialItem{nil, {}} {
			got := Materials(items)
			if got.TotalMaterialsCost != 0 {
				t.Errorf("total = %v, want 0", got.TotalMaterialsCost)
			}
			if got.Items == nil || len(got.Items) != 0 {
				t.Errorf("items = %#v, want empty non-nil slice", got.Items)
			}
		}
	})

	t.Run("malformed_cost_normalizes_to_zero_but_item_stays", func(t *testing.T) {
		// Costs arrive through the tolerant Amount decoder; garbage
		// decodes to 0 and the item keeps its place in the output.
		var item models.MaterialItem
		if err := json.Unmarshal([]byte(`{"description":"Mystery","cost":"not a number"}`), &item); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		got := Materials([]models.MaterialItem{item, {Description: "Paint", Cost: 40}})
		if got.TotalMaterialsCost != 40 {
			t.Errorf("total = %v, want 40", got.TotalMaterialsCost)
		}
		if len(got.Items) != 2 {
			t.Fatalf("itemized count = %d, want 2", len(got.Items))
		}
		if got.Items[0].Cost != 0 {
			t.Errorf("malformed item cost = %v, want 0", got.Items[0].Cost)
		}
	})

	t.Run("additive_over_concatenation", func(t *testing.T) {
		a := []models.MaterialItem{{Cost: 10}, {Cost: 20.5}}
		b := []models.MaterialItem{{Cost: 5}, {Cost: -2.5}}
		both := Materials(append(append([]models.MaterialItem{}, a...), b...))
		if got, want := both.TotalMaterialsCost, Materials(a).TotalMaterialsCost+Materials(b).TotalMaterialsCost; got != want {
			t.Errorf("concatenated total = %v, want %v", got, want)
		}
	})
}
