// Package fixture is the in-memory store used when no database is
// configured. It serves deterministic sample data shaped identically to the
// real DTOs so the UI keeps working without a backend ("demo mode"), and it
// implements the same repository ports as the pgsql package so services
// never branch on which store is active.
package fixture

import (
	"sort"
	"sync"
	"time"

	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	portsrepo "github.com/ktfabrics/khata_ledger_app/internal/core/ports/repositories"
	"github.com/ktfabrics/khata_ledger_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemoUsername and DemoPassword are the credentials seeded into the fixture
// store so the login flow works in demo mode.
const (
	DemoUsername = "demo"
	DemoPassword = "demo-khata-1234"
)

// Store holds the whole fixture dataset behind one mutex. Fixture traffic is
// a single operator clicking through a demo, so a coarse lock is plenty.
type Store struct {
	mu sync.Mutex

	khatas  []domain.Khata
	parties []domain.Party
	bills   []domain.Bill
	users   map[string]domain.User

	nextKhataID int64
	nextPartyID int64
	nextBillID  int64
	nextTxnID   int64
}

// NewStore builds a store seeded with the deterministic demo dataset: the
// default khata, a vendor and a customer, one pending purchase and one
// partially paid sale.
func NewStore() *Store {
	seedTime := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	audit := domain.AuditFields{CreatedAt: seedTime, UpdatedAt: seedTime}

	khataDescription := "Primary business khata"
	vendorPhone := "+92-300-1234567"
	threadPurchase := "Thread Purchase"
	clothSale := "Cloth Sale"

	saleDate := seedTime.AddDate(0, 0, 5)
	purchaseDue := seedTime.AddDate(0, 0, 30)
	saleDue := saleDate.AddDate(0, 0, 15)
	paymentDate := saleDate.AddDate(0, 0, 3)
	vendorName := "Textile Suppliers Ltd"
	customerName := "Fashion Retailer"

	s := &Store{
		khatas: []domain.Khata{{
			KhataID:     1,
			Name:        "Main Account Book",
			Description: &khataDescription,
			AuditFields: audit,
		}},
		parties: []domain.Party{
			{PartyID: 1, Name: vendorName, Type: domain.PartyTypeVendor, Phone: &vendorPhone, AuditFields: audit},
			{PartyID: 2, Name: customerName, Type: domain.PartyTypeCustomer, AuditFields: audit},
		},
		users:       make(map[string]domain.User),
		nextKhataID: 2,
		nextPartyID: 3,
		nextBillID:  3,
		nextTxnID:   2,
	}

	partyID1, partyID2 := int64(1), int64(2)
	s.bills = []domain.Bill{
		{
			BillID:      1,
			BillNumber:  domain.FormatBillNumber(1, 1),
			KhataID:     1,
			PartyID:     &partyID1,
			PartyName:   &vendorName,
			BillDate:    seedTime,
			DueDate:     &purchaseDue,
			Amount:      decimal.NewFromInt(25000),
			PaidAmount:  decimal.Zero,
			Description: &threadPurchase,
			BillType:    domain.BillTypePurchase,
			Status:      domain.BillStatusPending,
			AuditFields: audit,
		},
		{
			BillID:      2,
			BillNumber:  domain.FormatBillNumber(1, 2),
			KhataID:     1,
			PartyID:     &partyID2,
			PartyName:   &customerName,
			BillDate:    saleDate,
			DueDate:     &saleDue,
			Amount:      decimal.NewFromInt(35000),
			PaidAmount:  decimal.NewFromInt(10000),
			Description: &clothSale,
			BillType:    domain.BillTypeSale,
			Status:      domain.BillStatusPartial,
			Transactions: []domain.BillTransaction{{
				TransactionID: 1,
				BillID:        2,
				Amount:        decimal.NewFromInt(10000),
				CreatedAt:     paymentDate,
			}},
			AuditFields: domain.AuditFields{CreatedAt: saleDate, UpdatedAt: paymentDate},
		},
	}

	hash, err := utils.HashPassword(DemoPassword)
	if err == nil {
		s.users[DemoUsername] = domain.User{
			UserID:       uuid.NewString(),
			Username:     DemoUsername,
			PasswordHash: hash,
			AuditFields:  audit,
		}
	}

	return s
}

// NewRepositoryProvider wires every repository port to one shared fixture store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	s := NewStore()
	return portsrepo.RepositoryProvider{
		KhataRepo: s,
		BillRepo:  s,
		PartyRepo: s,
		UserRepo:  s,
	}
}

var (
	_ portsrepo.KhataRepositoryFacade = (*Store)(nil)
	_ portsrepo.BillRepositoryFacade  = (*Store)(nil)
	_ portsrepo.PartyRepositoryFacade = (*Store)(nil)
	_ portsrepo.UserRepositoryFacade  = (*Store)(nil)
)

// sortBillsNewestFirst orders bills by bill date descending, ID descending as
// a tiebreaker, matching the pgsql ordering.
func sortBillsNewestFirst(bills []domain.Bill) {
	sort.SliceStable(bills, func(i, j int) bool {
		if bills[i].BillDate.Equal(bills[j].BillDate) {
			return bills[i].BillID > bills[j].BillID
		}
		return bills[i].BillDate.After(bills[j].BillDate)
	})
}
