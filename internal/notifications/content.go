package notifications

import "github.com/cardiovital/server/internal/i18n"

// reminderTitles carries one title per language; the medication name is
// interpolated.
var reminderTitles = map[i18n.Language]string{
	i18n.Portuguese: "💊 Hora do medicamento: %s",
	i18n.English:    "💊 Medication time: %s",
	i18n.Dutch:      "💊 Medicijntijd: %s",
	i18n.French:     "💊 Heure du médicament : %s",
	i18n.German:     "💊 Medikamentenzeit: %s",
}

// reminderMessages is the motivational body pool, 10 per language. The
// medication name is interpolated.
var reminderMessages = map[i18n.Language][10]string{
	i18n.Portuguese: {
		"Hora de tomar %s! Seu coração agradece. ❤️",
		"Não esqueça do seu %s. Cada dose conta!",
		"Lembrete carinhoso: %s agora. Você está indo muito bem!",
		"%s te espera. Constância é o segredo da saúde do coração.",
		"Momento do %s! Pequenos hábitos, grandes resultados.",
		"Seu %s está na hora. Cuide de você hoje também!",
		"Psiu! Hora do %s. Seu futuro eu agradece.",
		"É agora: %s. Manter o horário protege seu coração.",
		"Dose do %s chegando! Você nunca falha, continue assim.",
		"Hora certinha do %s. Disciplina é amor-próprio. 💪",
	},
	i18n.English: {
		"Time to take %s! Your heart thanks you. ❤️",
		"Don't forget your %s. Every dose counts!",
		"Friendly reminder: %s now. You're doing great!",
		"%s is waiting. Consistency is the secret to heart health.",
		"%s time! Small habits, big results.",
		"Your %s is due. Take care of yourself today too!",
		"Psst! Time for %s. Your future self thanks you.",
		"It's now: %s. Staying on schedule protects your heart.",
		"%s dose coming up! You never miss, keep it up.",
		"Right on time for %s. Discipline is self-care. 💪",
	},
	i18n.Dutch: {
		"Tijd om %s in te nemen! Uw hart dankt u. ❤️",
		"Vergeet uw %s niet. Elke dosis telt!",
		"Vriendelijke herinnering: %s nu. U doet het geweldig!",
		"%s wacht op u. Consistentie is het geheim van hartgezondheid.",
		"%s-tijd! Kleine gewoonten, grote resultaten.",
		"Uw %s is aan de beurt. Zorg vandaag ook voor uzelf!",
		"Psst! Tijd voor %s. Uw toekomstige zelf dankt u.",
		"Het is nu: %s. Op schema blijven beschermt uw hart.",
		"%s-dosis komt eraan! U mist nooit, ga zo door.",
		"Precies op tijd voor %s. Discipline is zelfzorg. 💪",
	},
	i18n.French: {
		"C'est l'heure de prendre %s ! Votre cœur vous remercie. ❤️",
		"N'oubliez pas votre %s. Chaque dose compte !",
		"Petit rappel : %s maintenant. Vous vous débrouillez très bien !",
		"%s vous attend. La régularité est le secret de la santé cardiaque.",
		"C'est le moment de %s ! Petites habitudes, grands résultats.",
		"Votre %s est prévu. Prenez soin de vous aujourd'hui aussi !",
		"Psst ! C'est l'heure de %s. Votre futur vous remercie.",
		"C'est maintenant : %s. Respecter l'horaire protège votre cœur.",
		"Dose de %s à venir ! Vous ne manquez jamais, continuez.",
		"Pile à l'heure pour %s. La discipline, c'est prendre soin de soi. 💪",
	},
	i18n.German: {
		"Zeit, %s einzunehmen! Ihr Herz dankt es Ihnen. ❤️",
		"Vergessen Sie Ihr %s nicht. Jede Dosis zählt!",
		"Freundliche Erinnerung: %s jetzt. Sie machen das großartig!",
		"%s wartet auf Sie. Beständigkeit ist das Geheimnis der Herzgesundheit.",
		"%s-Zeit! Kleine Gewohnheiten, große Ergebnisse.",
		"Ihr %s ist fällig. Kümmern Sie sich auch heute um sich!",
		"Psst! Zeit für %s. Ihr zukünftiges Ich dankt Ihnen.",
		"Es ist soweit: %s. Den Zeitplan einzuhalten schützt Ihr Herz.",
		"%s-Dosis steht an! Sie verpassen nie etwas, weiter so.",
		"Genau rechtzeitig für %s. Disziplin ist Selbstfürsorge. 💪",
	},
}
