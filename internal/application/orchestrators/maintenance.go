package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	emailAdapter "quarters/internal/adapters/email"
	"quarters/internal/adapters/spreadsheet"
	maintenanceDomain "quarters/internal/domain/maintenance"
)

// AddIssueInput carries input for reporting a maintenance issue.
type AddIssueInput struct {
	Actor         Actor
	Accommodation string
	Block         string
	Section       string
	ReportDate    string
	Details       string
	Status        string
	Concern       string
	ConcernOther  string
	Risk          string
	Remarks       string
}

// AddIssueDeps holds dependencies for AddIssue.
type AddIssueDeps struct {
	Issues     IssueStore
	GenerateID func() string

	// Optional notification wiring. NotifyAddress empty disables it.
	EmailSender   emailAdapter.Sender
	NotifyAddress string
	FromAddress   string
}

// ExecuteAddIssue records a new maintenance issue and, when configured, sends
// a notification email. A failed notification never fails the operation.
// PRE: Accommodation is permitted for the actor; Status is valid
// POST: one issue appended with a generated id
func ExecuteAddIssue(ctx context.Context, input AddIssueInput, deps AddIssueDeps) (maintenanceDomain.Issue, error) {
	if !input.Actor.CanModify(input.Accommodation) {
		return maintenanceDomain.Issue{}, ErrPermissionDenied
	}

	issue := maintenanceDomain.Issue{
		ID:            deps.GenerateID(),
		Accommodation: input.Accommodation,
		Block:         input.Block,
		Section:       input.Section,
		ReportDate:    NormalizeDate(input.ReportDate),
		Details:       input.Details,
		Status:        input.Status,
		Concern:       input.Concern,
		ConcernOther:  input.ConcernOther,
		Risk:          input.Risk,
		Remarks:       input.Remarks,
	}
	if issue.Status == "" {
		issue.Status = maintenanceDomain.StatusOpen
	}
	if err := issue.Validate(); err != nil {
		return maintenanceDomain.Issue{}, err
	}

	err := deps.Issues.Mutate(ctx, func(issues []maintenanceDomain.Issue) ([]maintenanceDomain.Issue, error) {
		return append(issues, issue), nil
	})
	if err != nil {
		return maintenanceDomain.Issue{}, err
	}

	slog.Info("maintenance_event", "event", "issue_added", "issue_id", issue.ID,
		"accommodation", issue.Accommodation, "risk", issue.Risk, "actor", input.Actor.Username)

	if deps.EmailSender != nil && deps.NotifyAddress != "" {
		notifyNewIssue(ctx, issue, deps)
	}
	return issue, nil
}

func notifyNewIssue(ctx context.Context, issue maintenanceDomain.Issue, deps AddIssueDeps) {
	body := fmt.Sprintf(
		"<p>A maintenance issue was reported at <strong>%s</strong> (block %s, section %s).</p>"+
			"<p>Concern: %s<br>Risk: %s<br>Reported: %s</p><p>%s</p>",
		issue.Accommodation, issue.Block, issue.Section,
		issue.Concern, issue.Risk, issue.ReportDate, issue.Details)

	_, err := deps.EmailSender.Send(ctx, emailAdapter.Message{
		To:      []string{deps.NotifyAddress},
		From:    deps.FromAddress,
		Subject: fmt.Sprintf("Maintenance issue at %s", issue.Accommodation),
		HTML:    body,
	})
	if err != nil {
		slog.Warn("maintenance_notify_failed", "issue_id", issue.ID, "error", err)
	}
}

// UpdateIssueInput carries the editable fields of an issue.
type UpdateIssueInput struct {
	Actor        Actor
	ID           string
	Block        string
	Section      string
	ReportDate   string
	Details      string
	Status       string
	ClosedDate   string
	Concern      string
	ConcernOther string
	Risk         string
	Remarks      string
}

// UpdateIssueDeps holds dependencies for UpdateIssue.
type UpdateIssueDeps struct {
	Issues IssueStore
}

// ExecuteUpdateIssue edits an issue in place. Closing an issue without a
// closed date stamps today.
// PRE: the issue exists and its accommodation is permitted for the actor
// POST: the record carries the new field values
func ExecuteUpdateIssue(ctx context.Context, input UpdateIssueInput, deps UpdateIssueDeps) error {
	err := deps.Issues.Mutate(ctx, func(issues []maintenanceDomain.Issue) ([]maintenanceDomain.Issue, error) {
		for i := range issues {
			if issues[i].ID != input.ID {
				continue
			}
			if !input.Actor.CanModify(issues[i].Accommodation) {
				return nil, ErrPermissionDenied
			}
			issues[i].Block = input.Block
			issues[i].Section = input.Section
			issues[i].ReportDate = NormalizeDate(input.ReportDate)
			issues[i].Details = input.Details
			issues[i].Status = input.Status
			issues[i].ClosedDate = NormalizeDate(input.ClosedDate)
			issues[i].Concern = input.Concern
			issues[i].ConcernOther = input.ConcernOther
			issues[i].Risk = input.Risk
			issues[i].Remarks = input.Remarks
			if issues[i].IsClosed() && issues[i].ClosedDate == "" {
				issues[i].ClosedDate = time.Now().Format("2006-01-02")
			}
			if err := issues[i].Validate(); err != nil {
				return nil, err
			}
			return issues, nil
		}
		return nil, maintenanceDomain.ErrNotFound
	})
	if err != nil {
		return err
	}

	slog.Info("maintenance_event", "event", "issue_updated", "issue_id", input.ID, "actor", input.Actor.Username)
	return nil
}

// DeleteIssueInput carries input for removing an issue.
type DeleteIssueInput struct {
	Actor Actor
	ID    string
}

// DeleteIssueDeps holds dependencies for DeleteIssue.
type DeleteIssueDeps struct {
	Issues IssueStore
}

// ExecuteDeleteIssue removes an issue record.
// PRE: the issue exists and its accommodation is permitted for the actor
// POST: the record is gone
func ExecuteDeleteIssue(ctx context.Context, input DeleteIssueInput, deps DeleteIssueDeps) error {
	err := deps.Issues.Mutate(ctx, func(issues []maintenanceDomain.Issue) ([]maintenanceDomain.Issue, error) {
		for i := range issues {
			if issues[i].ID != input.ID {
				continue
			}
			if !input.Actor.CanModify(issues[i].Accommodation) {
				return nil, ErrPermissionDenied
			}
			return append(issues[:i], issues[i+1:]...), nil
		}
		return nil, maintenanceDomain.ErrNotFound
	})
	if err != nil {
		return err
	}

	slog.Info("maintenance_event", "event", "issue_deleted", "issue_id", input.ID, "actor", input.Actor.Username)
	return nil
}

// IssueColumns are the headers a maintenance workbook must carry.
var IssueColumns = []string{"Accommodation", "Report Date", "Details", "Status"}

// ImportIssuesInput carries a parsed workbook of maintenance issues.
type ImportIssuesInput struct {
	Actor Actor
	Table spreadsheet.Table
}

// ImportIssuesDeps holds dependencies for ImportIssues.
type ImportIssuesDeps struct {
	Issues     IssueStore
	GenerateID func() string
}

// ExecuteImportIssues appends workbook rows as issues with generated ids.
// PRE: the table carries every required column
// POST: rows appended; dates normalized to YYYY-MM-DD; store untouched on
// validation failure
func ExecuteImportIssues(ctx context.Context, input ImportIssuesInput, deps ImportIssuesDeps) (int, error) {
	if !userCanImport(input.Actor) {
		return 0, ErrPermissionDenied
	}
	if missing := input.Table.MissingColumns(IssueColumns...); len(missing) > 0 {
		return 0, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	incoming := make([]maintenanceDomain.Issue, 0, len(input.Table.Rows))
	for _, row := range input.Table.Rows {
		issue := maintenanceDomain.Issue{
			ID:            deps.GenerateID(),
			Accommodation: input.Table.Cell(row, "Accommodation"),
			Block:         input.Table.Cell(row, "Block"),
			Section:       input.Table.Cell(row, "Section"),
			ReportDate:    NormalizeDate(input.Table.Cell(row, "Report Date")),
			Details:       input.Table.Cell(row, "Details"),
			Status:        input.Table.Cell(row, "Status"),
			ClosedDate:    NormalizeDate(input.Table.Cell(row, "Closed Date")),
			Concern:       input.Table.Cell(row, "Concern"),
			ConcernOther:  input.Table.Cell(row, "Concern Other"),
			Risk:          input.Table.Cell(row, "Risk"),
			Remarks:       input.Table.Cell(row, "Remarks"),
		}
		if issue.Accommodation == "" {
			continue
		}
		if issue.Status == "" {
			issue.Status = maintenanceDomain.StatusOpen
		}
		if err := issue.Validate(); err != nil {
			return 0, fmt.Errorf("row %d: %w", len(incoming)+2, err)
		}
		incoming = append(incoming, issue)
	}

	err := deps.Issues.Mutate(ctx, func(issues []maintenanceDomain.Issue) ([]maintenanceDomain.Issue, error) {
		return append(issues, incoming...), nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("maintenance_event", "event", "issues_imported", "count", len(incoming), "actor", input.Actor.Username)
	return len(incoming), nil
}

// dateLayouts are the formats accepted on forms and spreadsheet imports.
var dateLayouts = []string{
	"2006-01-02", "02-01-2006", "02/01/2006", "2006/01/02",
	"2-1-2006", "Jan 2, 2006", "2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// NormalizeDate canonicalises a date string to YYYY-MM-DD. Unparseable values
// pass through trimmed, so odd legacy dates survive a round trip.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
