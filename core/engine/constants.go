package engine

import "github.com/shopspring/decimal"

// Geometry allowances, millimeters
var (
	centerSealOverlapMM  = decimal.NewFromInt(20)
	sealWidthMM          = decimal.NewFromInt(10)
	standUpBottomFoldMM  = decimal.NewFromInt(60)
	standUpLengthAllowMM = decimal.NewFromInt(20)
)

// Laminate consumables
var (
	// adhesiveGSM is the dry adhesive laid down per lamination interface
	adhesiveGSM = decimal.NewFromFloat(2.5)
	// adhesiveRate is the adhesive price per kg
	adhesiveRate = decimal.NewFromInt(250)

	// inkGSMPerColor is the average ink laydown per printed color
	inkGSMPerColor = decimal.NewFromFloat(0.5)
	// primerVarnishGSMAllowance is added once whenever anything is printed
	primerVarnishGSMAllowance = decimal.NewFromFloat(1.0)
	// inkRate is the ink price per kg
	inkRate = decimal.NewFromInt(300)
)

// Conversion costs per kg of finished film
var (
	printingCostPerKgBase     = decimal.NewFromInt(15)
	printingCostPerKgPerColor = decimal.NewFromInt(2)

	laminationCostPerKgBase    = decimal.NewFromInt(12)
	laminationCostPerKgPerPass = decimal.NewFromInt(5)

	pouchingCostPerKg  = decimal.NewFromInt(20)
	slittingCostPerKg  = decimal.NewFromInt(5)
	overheadsCostPerKg = decimal.NewFromInt(12)
)

var (
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
)
