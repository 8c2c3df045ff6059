package mapping

import (
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/ktfabrics/khata_ledger_app/internal/models"
)

// ToModelKhata converts a domain Khata to its persistence model.
func ToModelKhata(d domain.Khata) models.Khata {
	return models.Khata{
		KhataID:     d.KhataID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainKhata converts a model Khata to its domain representation.
func ToDomainKhata(m models.Khata) domain.Khata {
	return domain.Khata{
		KhataID:     m.KhataID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainKhataSlice converts model Khatas to domain Khatas.
func ToDomainKhataSlice(ms []models.Khata) []domain.Khata {
	ds := make([]domain.Khata, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainKhata(m)
	}
	return ds
}
