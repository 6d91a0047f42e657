package client

const (
	// API version prefix
	apiV1Prefix = "/api/v1"

	// Authentication endpoints
	endpointLogin = apiV1Prefix + "/auth/login"

	// Reminder endpoints
	endpointReminders    = apiV1Prefix + "/reminders"    // GET, POST
	endpointReminderByID = apiV1Prefix + "/reminders/%s" // GET, PUT, DELETE

	// Contact endpoints
	endpointContacts      = apiV1Prefix + "/contacts"           // GET, POST
	endpointContactsEmerg = apiV1Prefix + "/contacts/emergency" // GET

	// Chat endpoints
	endpointChatCompletions = "/v1/chat/completions" // OpenAI-compatible endpoint
)
