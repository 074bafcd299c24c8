package types

// ProcessDefaults are the admin-tunable assumptions filled into a job
// specification when it leaves them out
type ProcessDefaults struct {
	WastagePercent        float64        `json:"wastage_percent" toml:"wastage_percent" yaml:"wastage_percent"`
	LaborCostPerKg        float64        `json:"labor_cost_per_kg" toml:"labor_cost_per_kg" yaml:"labor_cost_per_kg"`
	MachineUsageCostPerKg float64        `json:"machine_usage_cost_per_kg" toml:"machine_usage_cost_per_kg" yaml:"machine_usage_cost_per_kg"`
	CylinderCostPerUnit   float64        `json:"cylinder_cost_per_unit" toml:"cylinder_cost_per_unit" yaml:"cylinder_cost_per_unit"`
	MarginPercent         float64        `json:"margin_percent" toml:"margin_percent" yaml:"margin_percent"`
	PrintingMethod        PrintingMethod `json:"printing_method" toml:"printing_method" yaml:"printing_method"`
}

// DefaultProcessDefaults returns the shop-floor defaults
func DefaultProcessDefaults() ProcessDefaults {
	return ProcessDefaults{
		WastagePercent:        5,
		LaborCostPerKg:        8,
		MachineUsageCostPerKg: 15,
		CylinderCostPerUnit:   3500,
		MarginPercent:         20,
		PrintingMethod:        PrintingRotogravure,
	}
}
