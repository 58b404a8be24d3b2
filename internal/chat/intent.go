package chat

import "strings"

// Intent labels used both for prompt guidance and fallback replies.
const (
	IntentGreeting    = "greeting"
	IntentAppointment = "appointment"
	IntentEmergency   = "emergency"
	IntentSymptom     = "symptom"
	IntentRecords     = "medical_records"
	IntentMedication  = "medication"
	IntentHelp        = "help"
	IntentGeneral     = "general"
)

// Urgency levels returned by AnalyzeUrgency.
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// intentKeywords maps each intent to its trigger phrases. Ordering in
// ClassifyIntent matters: emergency wins over everything else.
var intentKeywords = map[string][]string{
	IntentEmergency: {
		"emergency", "urgent", "help me", "911", "ambulance",
		"chest pain", "can't breathe", "cannot breathe", "bleeding",
		"unconscious", "overdose", "suicide", "suicidal",
	},
	IntentGreeting: {
		"hello", "hi", "hey", "good morning", "good afternoon",
		"good evening", "greetings",
	},
	IntentAppointment: {
		"appointment", "book", "schedule", "reschedule", "cancel",
		"doctor available", "available slots", "see a doctor",
	},
	IntentSymptom: {
		"symptom", "pain", "fever", "headache", "cough", "sick",
		"nausea", "dizzy", "sore throat", "cold", "flu", "hurt",
	},
	IntentRecords: {
		"medical record", "medical history", "allergy", "allergies",
		"my records", "health record", "diagnosis",
	},
	IntentMedication: {
		"medication", "medicine", "prescription", "pill", "dosage",
		"refill",
	},
	IntentHelp: {
		"help", "how do i", "how to", "what can you", "what do you",
	},
}

// classification order; emergency first so that "urgent help" is not
// classified as a help request.
var intentOrder = []string{
	IntentEmergency,
	IntentGreeting,
	IntentAppointment,
	IntentSymptom,
	IntentRecords,
	IntentMedication,
	IntentHelp,
}

// ClassifyIntent buckets a message by keyword matching. Pure function.
func ClassifyIntent(message string) string {
	lower := strings.ToLower(message)
	for _, intent := range intentOrder {
		for _, kw := range intentKeywords[intent] {
			if strings.Contains(lower, kw) {
				return intent
			}
		}
	}
	return IntentGeneral
}

var highUrgencyKeywords = []string{
	"chest pain", "can't breathe", "cannot breathe", "difficulty breathing",
	"unconscious", "severe bleeding", "overdose", "suicide", "suicidal",
	"heart attack", "stroke", "seizure", "severe pain",
}

var mediumUrgencyKeywords = []string{
	"fever", "vomiting", "persistent pain", "infection", "injury",
	"bleeding", "migraine", "dehydration",
}

type UrgencyResult struct {
	IsUrgent       bool   `json:"is_urgent"`
	UrgencyLevel   string `json:"urgency_level"`
	Recommendation string `json:"recommendation"`
}

// AnalyzeUrgency is a pure keyword triage. It is advisory text, not a
// medical judgment.
func AnalyzeUrgency(message string) UrgencyResult {
	lower := strings.ToLower(message)

	for _, kw := range highUrgencyKeywords {
		if strings.Contains(lower, kw) {
			return UrgencyResult{
				IsUrgent:     true,
				UrgencyLevel: UrgencyHigh,
				Recommendation: "This sounds like it could be a medical emergency. " +
					"Please call emergency services or use the emergency button immediately.",
			}
		}
	}

	for _, kw := range mediumUrgencyKeywords {
		if strings.Contains(lower, kw) {
			return UrgencyResult{
				IsUrgent:     true,
				UrgencyLevel: UrgencyMedium,
				Recommendation: "Your symptoms may need prompt attention. " +
					"Consider booking a same-day appointment or visiting the health center.",
			}
		}
	}

	return UrgencyResult{
		IsUrgent:     false,
		UrgencyLevel: UrgencyLow,
		Recommendation: "This does not appear urgent. You can book a regular " +
			"appointment through the app.",
	}
}
