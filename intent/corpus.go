package intent

import "crm-assistant/domain"

// DefaultCorpus is the static training corpus shipped with the assistant.
// Phrases are plain user wordings; the classifier derives per-intent noun
// and verb vocabularies from them at training time.
func DefaultCorpus() []domain.TrainingExample {
	return []domain.TrainingExample{
		{Phrase: "hello", Intent: "greeting"},
		{Phrase: "hi there", Intent: "greeting"},
		{Phrase: "hey", Intent: "greeting"},
		{Phrase: "good morning", Intent: "greeting"},
		{Phrase: "good afternoon", Intent: "greeting"},

		{Phrase: "bye", Intent: "goodbye"},
		{Phrase: "goodbye", Intent: "goodbye"},
		{Phrase: "see you later", Intent: "goodbye"},
		{Phrase: "talk to you soon", Intent: "goodbye"},

		{Phrase: "help", Intent: "help"},
		{Phrase: "what can you do", Intent: "help"},
		{Phrase: "how does this work", Intent: "help"},
		{Phrase: "i need help", Intent: "help"},

		{Phrase: "create a new contact", Intent: "create_contact"},
		{Phrase: "add contact", Intent: "create_contact"},
		{Phrase: "add a new person to my contacts", Intent: "create_contact"},
		{Phrase: "create contact for a customer", Intent: "create_contact"},

		{Phrase: "update contact", Intent: "update_contact"},
		{Phrase: "edit contact details", Intent: "update_contact"},
		{Phrase: "change contact phone number", Intent: "update_contact"},
		{Phrase: "modify contact email", Intent: "update_contact"},

		{Phrase: "delete contact", Intent: "delete_contact"},
		{Phrase: "remove contact", Intent: "delete_contact"},
		{Phrase: "delete this contact", Intent: "delete_contact"},
		{Phrase: "remove a person from contacts", Intent: "delete_contact"},

		{Phrase: "find contact", Intent: "search_contact"},
		{Phrase: "search contacts", Intent: "search_contact"},
		{Phrase: "show contact details", Intent: "search_contact"},
		{Phrase: "view my contacts", Intent: "search_contact"},

		{Phrase: "create a new deal", Intent: "create_deal"},
		{Phrase: "add deal to pipeline", Intent: "create_deal"},
		{Phrase: "create deal for a customer", Intent: "create_deal"},

		{Phrase: "update deal", Intent: "update_deal"},
		{Phrase: "change deal stage", Intent: "update_deal"},
		{Phrase: "edit deal amount", Intent: "update_deal"},
		{Phrase: "modify the deal", Intent: "update_deal"},

		{Phrase: "delete deal", Intent: "delete_deal"},
		{Phrase: "remove deal from pipeline", Intent: "delete_deal"},

		{Phrase: "create a task", Intent: "create_task"},
		{Phrase: "add new task", Intent: "create_task"},
		{Phrase: "schedule a task", Intent: "create_task"},
		{Phrase: "add a reminder", Intent: "create_task"},

		{Phrase: "update task", Intent: "update_task"},
		{Phrase: "change task due date", Intent: "update_task"},
		{Phrase: "edit task", Intent: "update_task"},

		{Phrase: "delete task", Intent: "delete_task"},
		{Phrase: "remove task", Intent: "delete_task"},

		{Phrase: "generate report", Intent: "generate_report"},
		{Phrase: "generate a sales report", Intent: "generate_report"},
		{Phrase: "show me the report", Intent: "generate_report"},
		{Phrase: "create monthly report", Intent: "generate_report"},

		{Phrase: "send email", Intent: "send_email"},
		{Phrase: "send a message to a customer", Intent: "send_email"},
		{Phrase: "send an email to a contact", Intent: "send_email"},

		{Phrase: "schedule meeting", Intent: "schedule_meeting"},
		{Phrase: "schedule a meeting with a customer", Intent: "schedule_meeting"},
		{Phrase: "add meeting to calendar", Intent: "schedule_meeting"},

		{Phrase: "something went wrong", Intent: "error_handling"},
		{Phrase: "the app crashed", Intent: "error_handling"},
		{Phrase: "i found a bug", Intent: "error_handling"},
		{Phrase: "this is not working", Intent: "error_handling"},
	}
}
