package mapping

import (
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/ktfabrics/khata_ledger_app/internal/models"
)

// ToModelBill converts a domain Bill to its persistence model.
// Transactions are persisted separately and not carried here.
func ToModelBill(d domain.Bill) models.Bill {
	return models.Bill{
		BillID:      d.BillID,
		BillNumber:  d.BillNumber,
		KhataID:     d.KhataID,
		PartyID:     d.PartyID,
		PartyName:   d.PartyName,
		BillDate:    d.BillDate,
		DueDate:     d.DueDate,
		Amount:      d.Amount,
		PaidAmount:  d.PaidAmount,
		Description: d.Description,
		BillType:    string(d.BillType),
		Status:      string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainBill converts a model Bill plus its payment rows to a domain Bill.
func ToDomainBill(m models.Bill, txns []models.BillTransaction) domain.Bill {
	domainTxns := make([]domain.BillTransaction, len(txns))
	for i, t := range txns {
		domainTxns[i] = ToDomainBillTransaction(t)
	}
	return domain.Bill{
		BillID:       m.BillID,
		BillNumber:   m.BillNumber,
		KhataID:      m.KhataID,
		PartyID:      m.PartyID,
		PartyName:    m.PartyName,
		BillDate:     m.BillDate,
		DueDate:      m.DueDate,
		Amount:       m.Amount,
		PaidAmount:   m.PaidAmount,
		Description:  m.Description,
		BillType:     domain.BillType(m.BillType),
		Status:       domain.BillStatus(m.Status),
		Transactions: domainTxns,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainBillTransaction converts a model payment row to its domain representation.
func ToDomainBillTransaction(m models.BillTransaction) domain.BillTransaction {
	return domain.BillTransaction{
		TransactionID: m.TransactionID,
		BillID:        m.BillID,
		Amount:        m.Amount,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}
