package hospital

import (
	"context"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"hospital-tui/internal/models"
	"hospital-tui/internal/store"
	"hospital-tui/internal/workflow"
)

// PatientBalance is the sum of one patient's invoices.
type PatientBalance struct {
	PatientID int64
	Name      string
	Invoices  []models.Invoice
	Total     decimal.Decimal
}

// Summarize groups invoices by patient, ordered by patient id. Invoices
// keep their storage order within a patient.
func Summarize(invoices []models.Invoice, dir *PatientDirectory) []PatientBalance {
	byPatient := map[int64]*PatientBalance{}
	for _, inv := range invoices {
		b, ok := byPatient[inv.PatientID]
		if !ok {
			b = &PatientBalance{PatientID: inv.PatientID, Name: dir.Name(inv.PatientID), Total: decimal.Zero}
			byPatient[inv.PatientID] = b
		}
		b.Invoices = append(b.Invoices, inv)
		b.Total = b.Total.Add(inv.Total())
	}

	out := make([]PatientBalance, 0, len(byPatient))
	for _, b := range byPatient {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PatientID < out[j].PatientID })
	return out
}

// BillingSummary lists outstanding totals per patient with a drill-down
// into the patient's invoice lines.
type BillingSummary struct {
	invoices store.Repository[models.Invoice]
	dir      *PatientDirectory
	log      *zap.Logger
	notice   *workflow.Notice

	balances []PatientBalance
	cursor   int
	detail   bool
}

func NewBillingSummary(invoices store.Repository[models.Invoice], dir *PatientDirectory, opts workflow.Options) *BillingSummary {
	return &BillingSummary{
		invoices: invoices,
		dir:      dir,
		log:      opts.Log().With(zap.String("screen", "billing")),
		notice:   opts.NewNotice(),
		cursor:   -1,
	}
}

func (b *BillingSummary) Balances() []PatientBalance { return b.balances }
func (b *BillingSummary) Notice() *workflow.Notice   { return b.notice }

// Current returns the balance under the cursor.
func (b *BillingSummary) Current() (PatientBalance, bool) {
	if b.cursor < 0 {
		return PatientBalance{}, false
	}
	return b.balances[b.cursor], true
}

// Refresh implements workflow.Screen.
func (b *BillingSummary) Refresh(ctx context.Context) error {
	if err := b.dir.Reload(ctx); err != nil {
		return b.fail(err)
	}
	list, err := b.invoices.List(ctx)
	if err != nil {
		return b.fail(err)
	}
	b.balances = Summarize(list, b.dir)
	b.detail = false
	switch {
	case len(b.balances) == 0:
		b.cursor = -1
	case b.cursor < 0 || b.cursor >= len(b.balances):
		b.cursor = 0
	}
	return nil
}

func (b *BillingSummary) fail(err error) error {
	wrapped := &workflow.StorageError{Err: err}
	b.notice.Fail(wrapped)
	b.log.Error("billing refresh failed", zap.Error(err))
	return wrapped
}

func (b *BillingSummary) CheckTimeout() {
	b.notice.CheckTimeout()
}

// HandleKey implements workflow.Screen.
func (b *BillingSummary) HandleKey(ctx context.Context, k workflow.Key) bool {
	b.notice.CheckTimeout()

	if b.detail {
		if k.Code == workflow.KeyEsc {
			b.detail = false
		}
		return false
	}

	n := len(b.balances)
	switch {
	case k.Code == workflow.KeyUp && n > 0:
		b.cursor = (b.cursor - 1 + n) % n
	case k.Code == workflow.KeyDown && n > 0:
		b.cursor = (b.cursor + 1) % n
	case k.Code == workflow.KeyEnter:
		if n == 0 {
			b.notice.Error("No invoices to show")
			break
		}
		b.detail = true
	case k.Is('r'):
		_ = b.Refresh(ctx)
	case k.Code == workflow.KeyEsc:
		return true
	}
	return false
}

// Snapshot implements workflow.Screen.
func (b *BillingSummary) Snapshot() workflow.Snapshot {
	snap := workflow.Snapshot{
		Title:  "Billing summary",
		Help:   "Up/Down move | Enter invoices | r refresh | Esc back",
		Notice: workflow.NoticeView{Level: b.notice.Level(), Text: b.notice.Text()},
	}

	if cur, ok := b.Current(); ok && b.detail {
		snap.Title = "Invoices for " + cur.Name
		snap.Help = "Esc back"
		snap.Table = workflow.TableView{Header: []string{"ID", "Item", "Quantity", "Cost", "Total"}, Cursor: -1}
		for _, inv := range cur.Invoices {
			snap.Table.Rows = append(snap.Table.Rows, []string{
				strconv.FormatInt(inv.ID, 10), inv.Item, strconv.Itoa(inv.Quantity),
				inv.Cost.StringFixed(2), inv.Total().StringFixed(2),
			})
		}
		snap.Lines = []string{"Total due: " + cur.Total.StringFixed(2)}
		return snap
	}

	snap.Table = workflow.TableView{Header: []string{"Patient ID", "Patient", "Invoices", "Total"}, Cursor: b.cursor}
	grand := decimal.Zero
	for _, bal := range b.balances {
		snap.Table.Rows = append(snap.Table.Rows, []string{
			strconv.FormatInt(bal.PatientID, 10), bal.Name, strconv.Itoa(len(bal.Invoices)), bal.Total.StringFixed(2),
		})
		grand = grand.Add(bal.Total)
	}
	snap.Lines = []string{"All patients: " + grand.StringFixed(2)}
	return snap
}
