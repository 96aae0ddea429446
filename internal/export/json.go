package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/piwi3910/TetraLog/internal/model"
)

// PlanDocument is the JSON form of a load plan. Units appear once, in
// request order; the loading sequence refers to them by index.
type PlanDocument struct {
	Vehicle  model.VehicleType `json:"vehicle"`
	Strategy model.Strategy    `json:"strategy"`
	Summary  model.LoadSummary `json:"summary"`
	Units    []*model.Item     `json:"units"`
	Sequence []int             `json:"sequence"` // Unit indexes in loading order
	Unplaced []int             `json:"unplaced"` // Unit indexes that did not fit
}

// NewPlanDocument builds the JSON document for plan.
func NewPlanDocument(plan model.LoadPlan) PlanDocument {
	doc := PlanDocument{
		Vehicle:  plan.Vehicle,
		Strategy: plan.Strategy,
		Summary:  plan.Summary,
		Units:    plan.Items,
		Sequence: []int{},
		Unplaced: []int{},
	}
	if plan.Bay != nil {
		for _, it := range plan.Bay.Placed {
			doc.Sequence = append(doc.Sequence, it.Index)
		}
	}
	for _, it := range plan.UnplacedItems() {
		doc.Unplaced = append(doc.Unplaced, it.Index)
	}
	return doc
}

// WriteJSON encodes plan as indented JSON to w.
func WriteJSON(w io.Writer, plan model.LoadPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewPlanDocument(plan)); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return nil
}

// ExportJSON writes plan as JSON to path.
func ExportJSON(path string, plan model.LoadPlan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(f, plan); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
