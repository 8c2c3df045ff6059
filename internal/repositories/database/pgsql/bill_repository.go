package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ktfabrics/khata_ledger_app/internal/apperrors"
	"github.com/ktfabrics/khata_ledger_app/internal/core/domain"
	portsrepo "github.com/ktfabrics/khata_ledger_app/internal/core/ports/repositories"
	"github.com/ktfabrics/khata_ledger_app/internal/models"
	"github.com/ktfabrics/khata_ledger_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// billNumberMaxRetries bounds the retry loop on a unique-constraint conflict
// for (khata_id, bill_number). The khata row lock makes a conflict unlikely;
// the constraint is the backstop.
const billNumberMaxRetries = 3

const billColumns = `
	b.bill_id, b.bill_number, b.khata_id, b.party_id, p.name,
	b.bill_date, b.due_date, b.amount, b.paid_amount, b.description,
	b.bill_type, b.status, b.created_at, b.updated_at`

type PgxBillRepository struct {
	BaseRepository
}

// newPgxBillRepository creates a new repository for bill and payment data.
func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryWithTx {
	return &PgxBillRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BillRepositoryWithTx = (*PgxBillRepository)(nil)

// buildBillFilter renders the filter as a WHERE clause over the bills table.
// The date range is inclusive on both ends.
func buildBillFilter(filter domain.BillFilter) (string, []any) {
	var clauses []string
	var args []any

	add := func(cond string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(cond, len(args)))
	}

	if filter.KhataID != nil {
		add("b.khata_id = $%d", *filter.KhataID)
	}
	if filter.PartyID != nil {
		add("b.party_id = $%d", *filter.PartyID)
	}
	if filter.BillType != nil {
		add("b.bill_type = $%d", string(*filter.BillType))
	}
	if filter.Status != nil {
		add("b.status = $%d", string(*filter.Status))
	}
	if filter.StartDate != nil {
		add("b.bill_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("b.bill_date <= $%d", *filter.EndDate)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// ListBills retrieves a page of bills matching the filter, newest bill date
// first, along with the total match count.
func (r *PgxBillRepository) ListBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, int64, error) {
	where, args := buildBillFilter(filter)

	countQuery := `SELECT COUNT(*) FROM bills b` + where
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT %s
		FROM bills b
		LEFT JOIN parties p ON p.party_id = b.party_id
		%s
		ORDER BY b.bill_date DESC, b.bill_id DESC
		LIMIT $%d OFFSET $%d;
	`, billColumns, where, len(args)+1, len(args)+2)
	listArgs := append(args, filter.Limit, filter.Offset)

	rows, err := r.Pool.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	modelBills, err := pgx.CollectRows(rows, scanBill)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan bills: %w", err)
	}

	txnsByBill, err := r.loadTransactions(ctx, modelBills)
	if err != nil {
		return nil, 0, err
	}

	bills := make([]domain.Bill, len(modelBills))
	for i, m := range modelBills {
		bills[i] = mapping.ToDomainBill(m, txnsByBill[m.BillID])
	}
	return bills, total, nil
}

// FindBillByID retrieves a single bill with its payment transactions.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID int64) (*domain.Bill, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bills b
		LEFT JOIN parties p ON p.party_id = b.party_id
		WHERE b.bill_id = $1;
	`, billColumns)

	rows, err := r.Pool.Query(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill %d: %w", billID, err)
	}
	modelBill, err := pgx.CollectOneRow(rows, scanBill)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan bill %d: %w", billID, err)
	}

	txnsByBill, err := r.loadTransactions(ctx, []models.Bill{modelBill})
	if err != nil {
		return nil, err
	}

	bill := mapping.ToDomainBill(modelBill, txnsByBill[modelBill.BillID])
	return &bill, nil
}

// CreateBill inserts a new bill, deriving its bill number from the count of
// prior bills for the khata. The khata row is locked for the duration of the
// count+insert so concurrent creates serialize; the unique constraint on
// (khata_id, bill_number) plus a bounded retry covers anything that slips
// through.
func (r *PgxBillRepository) CreateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	var lastErr error
	for attempt := 0; attempt < billNumberMaxRetries; attempt++ {
		created, err := r.createBillOnce(ctx, bill)
		if err != nil {
			if isUniqueViolation(err) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return created, nil
	}
	return nil, apperrors.NewAppError(500, "failed to allocate a unique bill number", lastErr)
}

func (r *PgxBillRepository) createBillOnce(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Lock the khata row so the count below cannot race another create.
	var khataID int64
	err = tx.QueryRow(ctx, `SELECT khata_id FROM khatas WHERE khata_id = $1 FOR UPDATE;`, bill.KhataID).Scan(&khataID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewAppError(404, "Khata not found", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock khata %d: %w", bill.KhataID, err)
	}

	var priorCount int64
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM bills WHERE khata_id = $1;`, bill.KhataID).Scan(&priorCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count bills for khata %d: %w", bill.KhataID, err)
	}

	modelBill := mapping.ToModelBill(bill)
	modelBill.BillNumber = domain.FormatBillNumber(bill.KhataID, priorCount+1)

	insertQuery := `
		INSERT INTO bills (
			bill_number, khata_id, party_id, bill_date, due_date,
			amount, paid_amount, description, bill_type, status,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING bill_id;
	`
	err = tx.QueryRow(ctx, insertQuery,
		modelBill.BillNumber,
		modelBill.KhataID,
		modelBill.PartyID,
		modelBill.BillDate,
		modelBill.DueDate,
		modelBill.Amount,
		modelBill.PaidAmount,
		modelBill.Description,
		modelBill.BillType,
		modelBill.Status,
		modelBill.CreatedAt,
		modelBill.UpdatedAt,
	).Scan(&modelBill.BillID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert bill %s: %w", modelBill.BillNumber, err)
	}

	if modelBill.PartyID != nil {
		var partyName string
		err = tx.QueryRow(ctx, `SELECT name FROM parties WHERE party_id = $1;`, *modelBill.PartyID).Scan(&partyName)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewAppError(404, "Party not found", apperrors.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to resolve party %d: %w", *modelBill.PartyID, err)
		}
		modelBill.PartyName = &partyName
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	created := mapping.ToDomainBill(modelBill, nil)
	return &created, nil
}

// RecordPayment appends a payment to a bill and advances paid amount and
// status in one transaction, with the bill row locked.
func (r *PgxBillRepository) RecordPayment(ctx context.Context, billID int64, amount decimal.Decimal, notes *string) (*domain.Bill, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var total, paid decimal.Decimal
	var status string
	err = tx.QueryRow(ctx, `
		SELECT amount, paid_amount, status FROM bills WHERE bill_id = $1 FOR UPDATE;
	`, billID).Scan(&total, &paid, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock bill %d: %w", billID, err)
	}

	if status == string(domain.BillStatusCancelled) {
		return nil, apperrors.NewValidationError("Cannot record a payment on a cancelled bill")
	}

	outstanding := total.Sub(paid)
	if amount.GreaterThan(outstanding) {
		return nil, apperrors.NewValidationError("Payment amount exceeds outstanding balance")
	}

	newPaid := paid.Add(amount)
	newStatus := domain.BillStatusPartial
	if newPaid.GreaterThanOrEqual(total) {
		newStatus = domain.BillStatusPaid
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO bill_transactions (bill_id, amount, notes, created_at)
		VALUES ($1, $2, $3, NOW());
	`, billID, amount, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment for bill %d: %w", billID, err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE bills SET paid_amount = $2, status = $3, updated_at = NOW() WHERE bill_id = $1;
	`, billID, newPaid, string(newStatus))
	if err != nil {
		return nil, fmt.Errorf("failed to update bill %d after payment: %w", billID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return r.FindBillByID(ctx, billID)
}

// loadTransactions fetches the payment rows for the given bills in one query,
// grouped by bill ID, oldest first.
func (r *PgxBillRepository) loadTransactions(ctx context.Context, bills []models.Bill) (map[int64][]models.BillTransaction, error) {
	result := make(map[int64][]models.BillTransaction, len(bills))
	if len(bills) == 0 {
		return result, nil
	}

	billIDs := make([]int64, len(bills))
	for i, b := range bills {
		billIDs[i] = b.BillID
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT transaction_id, bill_id, amount, notes, created_at
		FROM bill_transactions
		WHERE bill_id = ANY($1)
		ORDER BY created_at ASC, transaction_id ASC;
	`, billIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var txn models.BillTransaction
		if err := rows.Scan(&txn.TransactionID, &txn.BillID, &txn.Amount, &txn.Notes, &txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill transaction: %w", err)
		}
		result[txn.BillID] = append(result[txn.BillID], txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bill transactions: %w", err)
	}

	return result, nil
}

// scanBill scans one joined bills/parties row.
func scanBill(row pgx.CollectableRow) (models.Bill, error) {
	var bill models.Bill
	err := row.Scan(
		&bill.BillID,
		&bill.BillNumber,
		&bill.KhataID,
		&bill.PartyID,
		&bill.PartyName,
		&bill.BillDate,
		&bill.DueDate,
		&bill.Amount,
		&bill.PaidAmount,
		&bill.Description,
		&bill.BillType,
		&bill.Status,
		&bill.CreatedAt,
		&bill.UpdatedAt,
	)
	return bill, err
}
