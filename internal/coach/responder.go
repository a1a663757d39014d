// Package coach implements the local chat coach. Replies are produced by
// a keyword matcher over the incoming message, not by a remote model.
package coach

import (
	"fmt"
	"strings"

	"github.com/cardiovital/server/internal/i18n"
	"github.com/cardiovital/server/internal/recommend"
	"github.com/cardiovital/server/internal/storage"
)

type topic int

const (
	topicAge topic = iota
	topicWeight
	topicMedications
	topicExercise
	topicDiet
	topicHeart
	topicMotivation
)

// matchers are evaluated in order; the first topic whose keyword set hits
// wins. Keyword sets mix all five supported languages so matching works
// regardless of the active UI language. Only the reply is localized.
var matchers = []struct {
	topic    topic
	keywords []string
}{
	{topicAge, []string{"idade", "anos", "age", "old", "leeftijd", "jaar", "âge", "ans", "alter", "jahre"}},
	{topicWeight, []string{"peso", "weight", "gewicht", "poids", "imc", "bmi"}},
	{topicMedications, []string{"remédio", "remedio", "medicamento", "medication", "medicine", "pill", "medicijn", "médicament", "medicament", "medikament", "tablette"}},
	{topicExercise, []string{"exercício", "exercicio", "treino", "exercise", "workout", "oefening", "exercice", "übung", "training", "sport"}},
	{topicDiet, []string{"dieta", "comida", "alimenta", "diet", "food", "eat", "dieet", "voeding", "eten", "régime", "regime", "manger", "nourriture", "diät", "ernährung", "essen"}},
	{topicHeart, []string{"coração", "coracao", "pressão", "pressao", "heart", "blood pressure", "hart", "bloeddruk", "cœur", "coeur", "tension", "herz", "blutdruck"}},
	{topicMotivation, []string{"cansado", "desanimado", "desmotivado", "tired", "motivation", "moe", "fatigué", "fatigue", "müde", "motivatie"}},
}

// profileTopics require biometrics before their handler may run.
var profileTopics = map[topic]bool{
	topicAge:         true,
	topicWeight:      true,
	topicMedications: true,
	topicExercise:    true,
	topicDiet:        true,
}

// interrogatives across the five supported languages, used for fallback
// question detection when no topic matches.
var interrogatives = map[string]bool{
	"what": true, "how": true, "when": true, "why": true, "which": true, "who": true, "can": true, "should": true,
	"o": true, "que": true, "como": true, "quando": true, "por": true, "qual": true, "quem": true, "posso": true, "devo": true,
	"wat": true, "hoe": true, "wanneer": true, "waarom": true, "welke": true, "wie": true, "kan": true, "moet": true,
	"quoi": true, "comment": true, "quand": true, "pourquoi": true, "quel": true, "quelle": true, "qui": true, "est-ce": true, "puis-je": true,
	"was": true, "wann": true, "warum": true, "welche": true, "wer": true, "kann": true, "soll": true,
}

// Respond produces the coach reply for a message. It is stateless; the
// persisted chat history is an append-only log it never reads.
func Respond(message string, profile *storage.Profile, medications []storage.Medication, lang i18n.Language) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	tpl := templates[lang]

	for _, entry := range matchers {
		if !containsAny(msg, entry.keywords) {
			continue
		}
		if profileTopics[entry.topic] && profile == nil {
			return tpl.profileRequired
		}
		return renderTopic(entry.topic, tpl, profile, medications)
	}

	if looksLikeQuestion(msg) {
		return tpl.question + profileSuffix(tpl, profile)
	}
	return tpl.acknowledgment + profileSuffix(tpl, profile)
}

func renderTopic(t topic, tpl responseTemplates, profile *storage.Profile, medications []storage.Medication) string {
	switch t {
	case topicAge:
		narrative := tpl.ageYoung
		switch {
		case profile.Age > 60:
			narrative = tpl.ageSenior
		case profile.Age >= 40:
			narrative = tpl.ageMiddle
		}
		return fmt.Sprintf(tpl.age, profile.Age, narrative)

	case topicWeight:
		bmi := recommend.BMI(profile.WeightKg, profile.HeightCm)
		return fmt.Sprintf(tpl.weight, profile.WeightKg, bmi, tpl.weightAdvice[recommend.BMIStatus(bmi)])

	case topicMedications:
		if len(medications) == 0 {
			return tpl.medicationsNone
		}
		names := make([]string, 0, len(medications))
		for _, m := range medications {
			names = append(names, m.Name)
		}
		return fmt.Sprintf(tpl.medications, len(medications), strings.Join(names, ", "))

	case topicExercise:
		if recommend.BMI(profile.WeightKg, profile.HeightCm) > 25 {
			return tpl.exerciseOverweight
		}
		return tpl.exerciseGeneral

	case topicDiet:
		calories := recommend.DailyCalories(profile.WeightKg, profile.HeightCm, profile.Age)
		bmi := recommend.BMI(profile.WeightKg, profile.HeightCm)
		return fmt.Sprintf(tpl.diet, calories, tpl.weightAdvice[recommend.BMIStatus(bmi)])

	case topicHeart:
		return tpl.heart

	default:
		return tpl.motivation
	}
}

// profileSuffix appends a short biometric summary to the generic replies
// when a profile exists.
func profileSuffix(tpl responseTemplates, profile *storage.Profile) string {
	if profile == nil {
		return ""
	}
	return fmt.Sprintf(tpl.summarySuffix, profile.Age, profile.WeightKg)
}

func containsAny(msg string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

func looksLikeQuestion(msg string) bool {
	if strings.Contains(msg, "?") {
		return true
	}
	first, _, _ := strings.Cut(msg, " ")
	first = strings.Trim(first, ",.!;:")
	return interrogatives[first]
}
