package entities

// Segment is the cost category used to bucket budgets and spend.
//
// Services carry independent budget figures for mão de obra and material;
// general expenses may additionally be classified as equipamento or servico.

type Segment string

const (
	SegmentMaoDeObra   Segment = "mao_de_obra"
	SegmentMaterial    Segment = "material"
	SegmentEquipamento Segment = "equipamento"
	SegmentServico     Segment = "servico"
)

// ValidSegment reports whether s is one of the known cost segments.
func ValidSegment(s Segment) bool {
	switch s {
	case SegmentMaoDeObra, SegmentMaterial, SegmentEquipamento, SegmentServico:
		return true
	}
	return false
}

// BudgetedSegment reports whether s is a segment services carry a budget for.
func BudgetedSegment(s Segment) bool {
	return s == SegmentMaoDeObra || s == SegmentMaterial
}

// PayableStatus represents the settlement lifecycle of a payable record.
//
// Transitions are enforced by the payment use case, not by storage:
//   - a_pagar  -> parcial (partial payment) | pago (full payment) | liberado
//   - parcial  -> parcial | pago | liberado
//   - liberado -> parcial | pago
//
// liberado marks an item explicitly queued for payment; the summary policy
// counts it into liberado_pagamento regardless of priority.

type PayableStatus string

const (
	PayableStatusAPagar   PayableStatus = "a_pagar"
	PayableStatusParcial  PayableStatus = "parcial"
	PayableStatusLiberado PayableStatus = "liberado"
	PayableStatusPago     PayableStatus = "pago"
)
