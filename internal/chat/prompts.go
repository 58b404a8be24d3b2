package chat

// systemPrompt anchors every model conversation. It is deliberately
// narrow: the assistant helps with health-center logistics and general
// wellness guidance, never diagnosis.
const systemPrompt = `You are CareConnect, the assistant for a university health center.
You help students and staff with booking appointments, understanding their
medical records, finding health-center services, and general wellness guidance.

Rules:
- You are not a doctor. Never diagnose or prescribe. For medical concerns,
  recommend booking an appointment with a health-center doctor.
- If a message suggests a medical emergency, tell the user to call emergency
  services or use the app's emergency button right away.
- Keep answers short, warm, and practical.
- Only discuss topics related to health, wellness, and health-center services.`

// intentGuidance is appended to the system prompt so the model stays
// on-task for the detected intent.
var intentGuidance = map[string]string{
	IntentGreeting:    "The user is greeting you. Greet them back and briefly mention what you can help with.",
	IntentAppointment: "The user is asking about appointments. Explain how to book, reschedule, or cancel through the app, and offer to walk them through it.",
	IntentEmergency:   "The user may be in an emergency. Tell them to call emergency services or use the emergency button now. Do not continue normal conversation.",
	IntentSymptom:     "The user is describing symptoms. Offer general comfort advice only and recommend booking an appointment. Do not diagnose.",
	IntentRecords:     "The user is asking about medical records. Explain the Medical Records section of the app where they can view and manage allergies, medications, and conditions.",
	IntentMedication:  "The user is asking about medication. Remind them that prescriptions come from health-center doctors and that they can view active prescriptions in the app.",
	IntentHelp:        "The user wants help using the service. Summarize what you can do and point them to the relevant app section.",
}

// fallbackReplies serve when no model is configured or a model call
// fails. Keyed by intent.
var fallbackReplies = map[string]string{
	IntentGreeting: "Hello! I'm the CareConnect assistant. I can help you book " +
		"appointments, check your medical records, or find health center services. " +
		"What do you need?",
	IntentAppointment: "To book an appointment, open the Appointments tab, pick a " +
		"doctor, and choose one of the available time slots. You can cancel an " +
		"upcoming appointment at any time, and reschedule it up to 12 hours before " +
		"the visit.",
	IntentEmergency: "If this is a medical emergency, please call emergency services " +
		"immediately or press the emergency button in the app. The health center " +
		"nursing staff will be alerted right away.",
	IntentSymptom: "I can't assess symptoms, but the health center doctors can. " +
		"Please book an appointment through the Appointments tab. If your symptoms " +
		"are severe, use the emergency button.",
	IntentRecords: "You can view and manage your medical records (allergies, " +
		"medications, and conditions) in the Medical Records section of the app.",
	IntentMedication: "Prescriptions are issued by health center doctors. You can " +
		"see your active prescriptions in the app, and book an appointment if you " +
		"need a refill.",
	IntentHelp: "I can help with appointments, medical records, emergencies, and " +
		"general health center questions. Just tell me what you need.",
	IntentGeneral: "I'm here to help with health center services: booking " +
		"appointments, medical records, and emergencies. Could you tell me a bit " +
		"more about what you need?",
}

// FallbackReply returns the canned answer for a message when the model
// is unavailable.
func FallbackReply(message string) string {
	return fallbackReplies[ClassifyIntent(message)]
}

// HelpTopics backs GET /chat/help/{topic}.
var HelpTopics = map[string]string{
	"appointments": "Booking: open the Appointments tab, choose a doctor, pick an " +
		"available slot, and confirm. Rescheduling is allowed up to 12 hours before " +
		"the appointment time; cancellation is possible at any time.",
	"records": "The Medical Records section lists your allergies, medications, and " +
		"conditions. You can add new entries, edit them, or archive ones that no " +
		"longer apply.",
	"emergency": "In an emergency, press the emergency button in the app or call " +
		"emergency services. On-duty nurses see active emergency requests " +
		"immediately and will respond.",
	"services": "The health center offers general consultations, nursing care, " +
		"prescriptions and referrals, and emergency response during opening hours. " +
		"Use the app to reach any of these.",
}
