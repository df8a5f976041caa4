package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// API is the subset of the remote ledger the adapter reads from.
type API interface {
	CurrentUser(ctx context.Context) (*User, error)
	ListGroups(ctx context.Context) ([]Group, error)
	ListExpenses(ctx context.Context, offset, limit int, datedAfter *time.Time) ([]Expense, error)
}

type FetchOptions struct {
	// KnownRemoteIDs are skipped unless AllowRefetchAfter is set.
	KnownRemoteIDs map[int64]struct{}
	// AllowRefetchAfter re-reads known expenses dated after this day so
	// edits and undeletes reach the reconciler.
	AllowRefetchAfter *time.Time
	PageSize          int
	// MaxCount stops the fetch once this many records are collected. Zero means no limit.
	MaxCount int
}

type Adapter struct {
	api             API
	defaultCurrency string
	log             logrus.FieldLogger
	now             func() time.Time
}

func NewAdapter(api API, defaultCurrency string, log logrus.FieldLogger) *Adapter {
	if defaultCurrency == "" {
		defaultCurrency = DefaultCurrency
	}
	return &Adapter{
		api:             api,
		defaultCurrency: defaultCurrency,
		log:             log,
		now:             time.Now,
	}
}

// FetchTransactions pages through the remote ledger and returns the records
// that involve the caller. Any remote failure aborts the fetch.
func (a *Adapter) FetchTransactions(ctx context.Context, opts FetchOptions) ([]Record, error) {
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	me, err := a.api.CurrentUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "resolve current user")
	}

	groups, err := a.api.ListGroups(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list groups")
	}
	groupNames := make(map[int64]string, len(groups))
	for _, g := range groups {
		if g.ID != 0 {
			groupNames[g.ID] = g.Name
		}
	}

	var records []Record
	skipped := map[string]int{}
	for offset := 0; ; offset += pageSize {
		page, err := a.api.ListExpenses(ctx, offset, pageSize, opts.AllowRefetchAfter)
		if err != nil {
			return nil, errors.Wrapf(err, "list expenses at offset %d", offset)
		}

		for _, expense := range page {
			if opts.AllowRefetchAfter == nil {
				if _, known := opts.KnownRemoteIDs[expense.ID]; known {
					skipped["known"]++
					continue
				}
			}
			if expense.DeletedAt != nil && *expense.DeletedAt != "" {
				skipped["deleted"]++
				continue
			}

			share := userShare(expense, me.ID)
			if share.IsZero() {
				skipped["no_share"]++
				continue
			}

			records = append(records, a.toRecord(expense, share, groupNames))
			if opts.MaxCount > 0 && len(records) >= opts.MaxCount {
				a.logFetch(len(records), skipped)
				return records, nil
			}
		}

		if len(page) < pageSize {
			break
		}
	}

	a.logFetch(len(records), skipped)
	return records, nil
}

func (a *Adapter) logFetch(count int, skipped map[string]int) {
	a.log.WithFields(logrus.Fields{
		"records": count,
		"skipped": skipped,
	}).Info("Adapter.FetchTransactions complete")
}

func (a *Adapter) toRecord(expense Expense, share decimal.Decimal, groupNames map[int64]string) Record {
	now := a.now().UTC()

	record := Record{
		RemoteID:    expense.ID,
		Description: strings.TrimSpace(expense.Description),
		Amount:      expense.Cost.Decimal,
		UserShare:   share,
		Currency:    expense.CurrencyCode,
		OccurredOn:  parseDate(expense.Date, now),
		CreatedAt:   parseTimestamp(expense.CreatedAt, now),
		GroupName:   UngroupedName,
		IsPayment:   expense.Payment,
	}
	if record.Description == "" {
		record.Description = NoDescription
	}
	if record.Currency == "" {
		record.Currency = a.defaultCurrency
	}
	if expense.UpdatedAt != "" {
		updated := parseTimestamp(expense.UpdatedAt, now)
		record.UpdatedAt = &updated
	}
	if expense.GroupID != nil && *expense.GroupID != 0 {
		id := *expense.GroupID
		record.GroupID = &id
		if name, ok := groupNames[id]; ok {
			record.GroupName = name
		}
	}
	if expense.Category != nil && expense.Category.Name != "" {
		name := expense.Category.Name
		record.SourceCategory = &name
	}

	record.PayerID, record.PayerName = payer(expense)
	if record.PayerID == nil {
		a.log.WithField("remote_id", expense.ID).Debugf("Adapter.no payer: %s", spew.Sdump(expense.Users))
	}

	return record
}

// userShare is the caller's owed share, or zero when the caller is not a participant.
func userShare(expense Expense, userID int64) decimal.Decimal {
	for _, p := range expense.Users {
		if participantID(p) == userID && p.OwedShare.Valid {
			return p.OwedShare.Decimal
		}
	}
	return decimal.Zero
}

// payer returns the first participant with a positive paid share.
func payer(expense Expense) (*int64, *string) {
	for _, p := range expense.Users {
		if p.PaidShare.Valid && p.PaidShare.Decimal.IsPositive() {
			id := participantID(p)
			name := p.User.FirstName
			return &id, &name
		}
	}
	return nil, nil
}

func participantID(p Participant) int64 {
	if p.UserID != 0 {
		return p.UserID
	}
	return p.User.ID
}

func parseDate(raw string, fallback time.Time) time.Time {
	if len(raw) >= remoteDatePrefixLength {
		if d, err := time.Parse(time.DateOnly, raw[:remoteDatePrefixLength]); err == nil {
			return d
		}
	}
	return time.Date(fallback.Year(), fallback.Month(), fallback.Day(), 0, 0, 0, 0, time.UTC)
}

func parseTimestamp(raw string, fallback time.Time) time.Time {
	if t, err := time.Parse(remoteTimestampLayout, raw); err == nil {
		return t.UTC()
	}
	return fallback
}
