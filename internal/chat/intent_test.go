package chat

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Hello there", IntentGreeting},
		{"hi", IntentGreeting},
		{"I want to book an appointment", IntentAppointment},
		{"Can I reschedule my visit?", IntentAppointment},
		{"I have chest pain", IntentEmergency},
		{"this is an emergency", IntentEmergency},
		{"urgent help please", IntentEmergency},
		{"I have a fever and a headache", IntentSymptom},
		{"my sore throat won't go away", IntentSymptom},
		{"show me my medical records", IntentRecords},
		{"I have an allergy to peanuts", IntentRecords},
		{"I need a prescription refill", IntentMedication},
		{"how do I use this app", IntentHelp},
		{"what's the weather like", IntentGeneral},
		{"", IntentGeneral},
	}

	for _, tc := range tests {
		if got := ClassifyIntent(tc.message); got != tc.want {
			t.Errorf("ClassifyIntent(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestClassifyIntentEmergencyWinsOverHelp(t *testing.T) {
	// "help" alone is a help intent, but paired with emergency keywords
	// the emergency classification must win.
	if got := ClassifyIntent("help me, I can't breathe"); got != IntentEmergency {
		t.Errorf("got %q, want %q", got, IntentEmergency)
	}
}

func TestAnalyzeUrgency(t *testing.T) {
	tests := []struct {
		message    string
		wantUrgent bool
		wantLevel  string
	}{
		{"I'm having chest pain right now", true, UrgencyHigh},
		{"my friend is unconscious", true, UrgencyHigh},
		{"I think I took an overdose", true, UrgencyHigh},
		{"I've had a fever since yesterday", true, UrgencyMedium},
		{"vomiting all morning", true, UrgencyMedium},
		{"can I book a checkup next week", false, UrgencyLow},
		{"hello", false, UrgencyLow},
	}

	for _, tc := range tests {
		got := AnalyzeUrgency(tc.message)
		if got.IsUrgent != tc.wantUrgent || got.UrgencyLevel != tc.wantLevel {
			t.Errorf("AnalyzeUrgency(%q) = {urgent:%v level:%s}, want {urgent:%v level:%s}",
				tc.message, got.IsUrgent, got.UrgencyLevel, tc.wantUrgent, tc.wantLevel)
		}
		if got.Recommendation == "" {
			t.Errorf("AnalyzeUrgency(%q): empty recommendation", tc.message)
		}
	}
}

func TestFallbackReplyNeverEmpty(t *testing.T) {
	messages := []string{
		"hello", "book me an appointment", "chest pain", "fever",
		"medical records", "prescription", "how do I", "random text",
	}
	for _, m := range messages {
		if FallbackReply(m) == "" {
			t.Errorf("FallbackReply(%q) is empty", m)
		}
	}
}
