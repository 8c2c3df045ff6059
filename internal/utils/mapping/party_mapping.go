package mapping

import (
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	"github.com/ktfabrics/khata_ledger_app/internal/models"
)

// ToDomainParty converts a model Party to its domain representation.
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID: m.PartyID,
		Name:    m.Name,
		Type:    domain.PartyType(m.Type),
		Phone:   m.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainPartySlice converts model Parties to domain Parties.
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}
