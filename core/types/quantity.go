package types

import "fmt"

// QuantityBasis names how the job size is expressed
type QuantityBasis string

const (
	BasisWeight QuantityBasis = "weight"
	BasisCount  QuantityBasis = "count"
)

// Quantity is the job size used to amortize one-time tooling.
// It is either ByWeight or ByCount, never both.
type Quantity interface {
	Basis() QuantityBasis
	String() string
	isQuantity()
}

// ByWeight is a job size in kilograms of finished film
type ByWeight struct {
	Kg float64
}

// ByCount is a job size in pouches
type ByCount struct {
	Pieces int64
}

func (ByWeight) Basis() QuantityBasis { return BasisWeight }
func (ByCount) Basis() QuantityBasis  { return BasisCount }

func (q ByWeight) String() string { return fmt.Sprintf("%g kg", q.Kg) }
func (q ByCount) String() string  { return fmt.Sprintf("%d pcs", q.Pieces) }

func (ByWeight) isQuantity() {}
func (ByCount) isQuantity()  {}
