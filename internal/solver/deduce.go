package solver

import (
	"github.com/sirupsen/logrus"
)

// Deduce scans each completely enumerated component for variables whose
// verdict is unanimous across the whole solution set. Capped
// enumerations are incomplete evidence and contribute nothing;
// contradictory ones are logged and skipped.
func Deduce(enums []Enumeration) []Deduction {
	var deductions []Deduction
	for _, e := range enums {
		if e.Status == EnumContradictory {
			Log.WithFields(logrus.Fields{
				"constraints": len(e.Component.Constraints),
				"cells":       len(e.Component.Cells),
			}).Warn("contradictory component, skipping")
			continue
		}
		if e.Status != EnumComplete || e.Solutions() == 0 {
			continue
		}
		total := e.Solutions()
		for i, mines := range e.MineCounts {
			switch mines {
			case total:
				deductions = append(deductions, Deduction{Cell: e.Component.Cells[i], Mine: true})
			case 0:
				deductions = append(deductions, Deduction{Cell: e.Component.Cells[i], Mine: false})
			}
		}
	}
	return deductions
}
