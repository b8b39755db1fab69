package response

// Template associates a wildcard pattern with a canned reply. Patterns
// are matched against the upper-cased, punctuation-stripped message;
// literal parts between the * wildcards must be found (exactly or
// fuzzily) for the template to score.
type Template struct {
	Pattern    string
	Reply      string
	Confidence float64
}

// DefaultTemplates is the production template set, ordered per intent.
// Ties keep the first entry.
func DefaultTemplates() map[string][]Template {
	return map[string][]Template{
		"greeting": {
			{Pattern: "*HELLO*", Reply: "Hello! I can help you manage contacts, deals, tasks and reports. What would you like to do?", Confidence: 0.9},
			{Pattern: "*", Reply: "Hi! Ask me to create, update or look up anything in your CRM.", Confidence: 0.7},
		},
		"goodbye": {
			{Pattern: "*BYE*", Reply: "Goodbye! Come back whenever you need your CRM.", Confidence: 0.9},
			{Pattern: "*", Reply: "See you soon!", Confidence: 0.7},
		},
		"help": {
			{Pattern: "*HELP*", Reply: "I understand requests about contacts, deals, tasks, reports and emails. Try \"create a contact\" or \"generate a sales report\".", Confidence: 0.9},
			{Pattern: "*", Reply: "You can ask me to create, update, delete or search contacts, deals and tasks.", Confidence: 0.7},
		},
		"create_contact": {
			{Pattern: "*CREATE*CONTACT*", Reply: "Sure, let's add [PERSON] as a new contact. I'll open the contact form for you.", Confidence: 0.85},
			{Pattern: "*ADD*CONTACT*", Reply: "Adding [PERSON] to your contacts now.", Confidence: 0.85},
			{Pattern: "*", Reply: "I can create a new contact for you. Who should I add?", Confidence: 0.6},
		},
		"update_contact": {
			{Pattern: "*UPDATE*CONTACT*", Reply: "I'll update the contact record for [PERSON]. Which field should change?", Confidence: 0.85},
			{Pattern: "*CHANGE*PHONE*", Reply: "Let's change the phone number for [PERSON].", Confidence: 0.85},
			{Pattern: "*CHANGE*EMAIL*", Reply: "Updating the email to [EMAIL].", Confidence: 0.85},
			{Pattern: "*", Reply: "Which contact would you like to edit?", Confidence: 0.6},
		},
		"delete_contact": {
			{Pattern: "*DELETE*CONTACT*", Reply: "I can delete [PERSON] from your contacts. This cannot be undone - please confirm.", Confidence: 0.9},
			{Pattern: "*REMOVE*CONTACT*", Reply: "Removing [PERSON] from your contact list. Please confirm.", Confidence: 0.9},
			{Pattern: "*", Reply: "Which contact should I delete? Note that deletion is permanent.", Confidence: 0.6},
		},
		"search_contact": {
			{Pattern: "*FIND*CONTACT*", Reply: "Searching your contacts for [PERSON].", Confidence: 0.85},
			{Pattern: "*SHOW*CONTACT*", Reply: "Here are the contact details for [PERSON].", Confidence: 0.85},
			{Pattern: "*", Reply: "Who are you looking for?", Confidence: 0.6},
		},
		"create_deal": {
			{Pattern: "*CREATE*DEAL*", Reply: "Creating a new deal. Which contact and amount should I attach?", Confidence: 0.85},
			{Pattern: "*ADD*DEAL*", Reply: "Adding a deal to your pipeline.", Confidence: 0.85},
			{Pattern: "*", Reply: "I can open a new deal for you. What are the details?", Confidence: 0.6},
		},
		"update_deal": {
			{Pattern: "*UPDATE*DEAL*", Reply: "Which stage or amount should I update on the deal?", Confidence: 0.85},
			{Pattern: "*CHANGE*STAGE*", Reply: "Moving the deal to its new stage.", Confidence: 0.85},
			{Pattern: "*", Reply: "Which deal would you like to modify?", Confidence: 0.6},
		},
		"delete_deal": {
			{Pattern: "*DELETE*DEAL*", Reply: "Deleting the deal from your pipeline. Please confirm.", Confidence: 0.9},
			{Pattern: "*", Reply: "Which deal should I remove?", Confidence: 0.6},
		},
		"create_task": {
			{Pattern: "*CREATE*TASK*", Reply: "Creating the task. When is it due?", Confidence: 0.85},
			{Pattern: "*ADD*REMINDER*", Reply: "Setting a reminder for you.", Confidence: 0.85},
			{Pattern: "*", Reply: "I can add a task or reminder. What should it say?", Confidence: 0.6},
		},
		"update_task": {
			{Pattern: "*UPDATE*TASK*", Reply: "Updating the task. What changes?", Confidence: 0.85},
			{Pattern: "*", Reply: "Which task should I edit?", Confidence: 0.6},
		},
		"delete_task": {
			{Pattern: "*DELETE*TASK*", Reply: "Deleting the task. Please confirm.", Confidence: 0.9},
			{Pattern: "*", Reply: "Which task should I remove?", Confidence: 0.6},
		},
		"generate_report": {
			{Pattern: "*GENERATE*REPORT*", Reply: "Generating your report now. It will appear under Reports shortly.", Confidence: 0.85},
			{Pattern: "*SALES*REPORT*", Reply: "Building the sales report for the current period.", Confidence: 0.85},
			{Pattern: "*", Reply: "Which report would you like: sales, activity or pipeline?", Confidence: 0.6},
		},
		"send_email": {
			{Pattern: "*SEND*EMAIL*", Reply: "Drafting an email to [EMAIL].", Confidence: 0.85},
			{Pattern: "*SEND*MESSAGE*", Reply: "Composing a message to [PERSON].", Confidence: 0.85},
			{Pattern: "*", Reply: "Who should receive the email?", Confidence: 0.6},
		},
		"schedule_meeting": {
			{Pattern: "*SCHEDULE*MEETING*", Reply: "Scheduling the meeting with [PERSON]. Which time works?", Confidence: 0.85},
			{Pattern: "*", Reply: "I can put a meeting on your calendar. With whom and when?", Confidence: 0.6},
		},
		"error_handling": {
			{Pattern: "*NOT WORKING*", Reply: "Sorry about that. I've logged the problem - could you describe what you expected to happen?", Confidence: 0.9},
			{Pattern: "*ERROR*", Reply: "I've recorded the error report. Our team will look into it.", Confidence: 0.9},
			{Pattern: "*", Reply: "Something went wrong on our side. The issue has been reported.", Confidence: 0.7},
		},
		"fallback": {
			{Pattern: "*", Reply: "I'm not sure I understood that. Try asking me to create, update or delete a contact, deal or task.", Confidence: 0.3},
		},
	}
}
