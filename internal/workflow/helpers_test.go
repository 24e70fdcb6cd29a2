package workflow

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
)

func invoiceKind() Kind[models.Invoice] {
	return Kind[models.Invoice]{
		Noun:   "record",
		Plural: "records",
		Fields: []Field[models.Invoice]{
			{Name: "ID", Format: func(i models.Invoice) string { return strconv.FormatInt(i.ID, 10) }},
			{
				Name:   "Item",
				Format: func(i models.Invoice) string { return i.Item },
				Parse: func(i *models.Invoice, raw string) error {
					if strings.TrimSpace(raw) == "" {
						return errors.New("Item cannot be empty")
					}
					i.Item = raw
					return nil
				},
			},
			{
				Name:   "Quantity",
				Format: func(i models.Invoice) string { return strconv.Itoa(i.Quantity) },
				Parse: func(i *models.Invoice, raw string) error {
					q, err := strconv.Atoi(strings.TrimSpace(raw))
					if err != nil {
						return errors.New("Invalid quantity. Please enter a valid number.")
					}
					i.Quantity = q
					return nil
				},
			},
			{Name: "Cost", Format: func(i models.Invoice) string { return i.Cost.StringFixed(2) }},
		},
		Project: func(i models.Invoice) string { return i.Item },
	}
}

func seedInvoices(t *testing.T, repo store.Repository[models.Invoice], items ...string) {
	t.Helper()
	for _, item := range items {
		inv := models.Invoice{PatientID: 1, Item: item, Quantity: 1, Cost: decimal.RequireFromString("9.50")}
		_, err := repo.Create(context.Background(), &inv)
		require.NoError(t, err)
	}
}

// failingRepo fails Delete on the n-th call and counts attempts.
type failingRepo struct {
	store.Repository[models.Invoice]
	failOn   int
	attempts []int64
}

func (r *failingRepo) Delete(ctx context.Context, id int64) error {
	r.attempts = append(r.attempts, id)
	if len(r.attempts) == r.failOn {
		return errors.New("connection reset")
	}
	return r.Repository.Delete(ctx, id)
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func typeString(ctx context.Context, s Screen, text string) {
	for _, r := range text {
		s.HandleKey(ctx, Char(r))
	}
}
