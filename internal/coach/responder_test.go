package coach

import (
	"strings"
	"testing"

	"github.com/cardiovital/server/internal/i18n"
	"github.com/cardiovital/server/internal/storage"
)

func testProfile() *storage.Profile {
	return &storage.Profile{
		OwnerUserID: "default",
		Age:         55,
		WeightKg:    82,
		HeightCm:    176,
	}
}

func TestRespondTopicPriorityAgeBeforeWeight(t *testing.T) {
	// Matches both the age and weight keyword sets; age must win.
	reply := Respond("How old am I and what's my weight?", testProfile(), nil, i18n.English)

	if !strings.Contains(reply, "55 years old") {
		t.Errorf("expected the age branch, got %q", reply)
	}
}

func TestRespondProfileRequired(t *testing.T) {
	profileTopicsInputs := []string{
		"how old am I?",
		"what is my weight",
		"which medication should I take",
		"any exercise for me?",
		"what should I eat",
	}

	for _, input := range profileTopicsInputs {
		reply := Respond(input, nil, nil, i18n.English)
		if !strings.Contains(reply, "complete your profile") {
			t.Errorf("input %q: expected profile prompt, got %q", input, reply)
		}
	}
}

func TestRespondHeartWorksWithoutProfile(t *testing.T) {
	reply := Respond("tell me about my heart", nil, nil, i18n.English)

	if strings.Contains(reply, "complete your profile") {
		t.Errorf("heart topic should not require a profile, got %q", reply)
	}
	if !strings.Contains(reply, "blood pressure") {
		t.Errorf("expected heart advice, got %q", reply)
	}
}

func TestRespondCrossLanguageKeywords(t *testing.T) {
	// A Portuguese keyword matches even when the reply language is German.
	reply := Respond("qual a minha dieta ideal", testProfile(), nil, i18n.German)

	if !strings.Contains(reply, "Kalorien") {
		t.Errorf("expected a German diet reply, got %q", reply)
	}
}

func TestRespondMedications(t *testing.T) {
	medications := []storage.Medication{
		{Name: "Losartana"},
		{Name: "AAS"},
	}

	reply := Respond("my medications", testProfile(), medications, i18n.English)

	if !strings.Contains(reply, "2 medication(s)") {
		t.Errorf("expected medication count, got %q", reply)
	}
	if !strings.Contains(reply, "Losartana, AAS") {
		t.Errorf("expected medication names, got %q", reply)
	}
}

func TestRespondMedicationsEmpty(t *testing.T) {
	reply := Respond("my medications", testProfile(), nil, i18n.English)

	if !strings.Contains(reply, "not registered any medications") {
		t.Errorf("expected the empty-list reply, got %q", reply)
	}
}

func TestRespondDietIncludesCalories(t *testing.T) {
	// BMR = 10*82 + 6.25*176 - 5*55 + 5 = 1650, * 1.3 = 2145
	reply := Respond("what should my diet look like", testProfile(), nil, i18n.English)

	if !strings.Contains(reply, "2145 calories") {
		t.Errorf("expected the calorie target in the reply, got %q", reply)
	}
}

func TestRespondQuestionFallback(t *testing.T) {
	reply := Respond("can you help me with something unrelated?", testProfile(), nil, i18n.English)

	if !strings.Contains(reply, "Great question!") {
		t.Errorf("expected the question fallback, got %q", reply)
	}
	if !strings.Contains(reply, "55 years") {
		t.Errorf("expected the profile summary suffix, got %q", reply)
	}
}

func TestRespondAcknowledgmentFallback(t *testing.T) {
	reply := Respond("thanks a lot", nil, nil, i18n.English)

	if !strings.Contains(reply, "Got it!") {
		t.Errorf("expected the acknowledgment fallback, got %q", reply)
	}
}

func TestTemplatesCoverAllLanguages(t *testing.T) {
	for _, lang := range i18n.Supported {
		tpl, ok := templates[lang]
		if !ok {
			t.Fatalf("missing templates for %s", lang)
		}
		for _, status := range []string{"underweight", "normal", "overweight", "obese"} {
			if tpl.weightAdvice[status] == "" {
				t.Errorf("%s: missing weight advice for %s", lang, status)
			}
		}
	}
}
