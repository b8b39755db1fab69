package kb

import "crm-assistant/domain"

// DefaultArticles is the curated help corpus shipped with the assistant.
func DefaultArticles() []domain.Article {
	return []domain.Article{
		{
			ID:       "kb-1",
			Title:    "Importing contacts from a spreadsheet",
			Content:  "You can import contacts in bulk by uploading a CSV file. Map each column to a contact field, preview the rows and confirm. Duplicate emails are merged automatically.",
			Category: "contacts",
			Tags:     []string{"import", "csv", "contacts"},
		},
		{
			ID:       "kb-2",
			Title:    "Managing your sales pipeline",
			Content:  "Deals move through pipeline stages from lead to closed. Drag a deal card between stages or edit the stage field directly. Stage history is kept for reporting.",
			Category: "deals",
			Tags:     []string{"pipeline", "deals", "stages"},
		},
		{
			ID:       "kb-3",
			Title:    "Creating custom reports",
			Content:  "Reports are built from filters and groupings over contacts, deals and activities. Save a report to rerun it later or schedule it for weekly email delivery.",
			Category: "reports",
			Tags:     []string{"reports", "filters", "export"},
		},
		{
			ID:       "kb-4",
			Title:    "Troubleshooting sync errors",
			Content:  "If an external sync fails, check the integration credentials first. Failed records are retried automatically with increasing delays. Persistent errors appear in the activity log.",
			Category: "integrations",
			Tags:     []string{"sync", "errors", "integrations"},
		},
		{
			ID:       "kb-5",
			Title:    "Setting up email integration",
			Content:  "Connect your mailbox to send and log emails from contact pages. Incoming replies are attached to the matching contact automatically.",
			Category: "email",
			Tags:     []string{"email", "integration", "inbox"},
		},
		{
			ID:       "kb-6",
			Title:    "Organizing tasks and reminders",
			Content:  "Tasks can be linked to contacts and deals, assigned to teammates and given due dates. Overdue tasks are highlighted on the dashboard.",
			Category: "tasks",
			Tags:     []string{"tasks", "reminders", "due dates"},
		},
		{
			ID:       "kb-7",
			Title:    "Scoring and qualifying leads",
			Content:  "Lead scores combine engagement, company size, budget fit and timeline into a 0-100 value. Hot leads score above 70 and appear at the top of your queue.",
			Category: "leads",
			Tags:     []string{"leads", "scoring", "qualification"},
		},
		{
			ID:       "kb-8",
			Title:    "Exporting your data",
			Content:  "Any list view can be exported to CSV. Full account exports including notes and attachments are available from the settings page.",
			Category: "settings",
			Tags:     []string{"export", "csv", "backup"},
		},
	}
}
