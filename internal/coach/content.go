package coach

import "github.com/cardiovital/server/internal/i18n"

// responseTemplates holds one language's reply texts. Format verbs:
// age is "%d years, %s narrative", weight is "%.0f kg, %.1f BMI, %s advice",
// medications is "%d count, %s names", diet is "%d kcal, %s advice",
// summarySuffix is "%d years, %.0f kg".
type responseTemplates struct {
	profileRequired    string
	age                string
	ageYoung           string
	ageMiddle          string
	ageSenior          string
	weight             string
	weightAdvice       map[string]string
	medicationsNone    string
	medications        string
	exerciseGeneral    string
	exerciseOverweight string
	diet               string
	heart              string
	motivation         string
	question           string
	acknowledgment     string
	summarySuffix      string
}

var templates = map[i18n.Language]responseTemplates{
	i18n.Portuguese: {
		profileRequired:    "Para eu te ajudar melhor, complete seu perfil primeiro com idade, peso e altura.",
		age:                "Você tem %d anos. %s",
		ageYoung:           "Nessa fase, exercícios regulares e boa alimentação constroem uma base sólida para o seu coração.",
		ageMiddle:          "A partir dos 40, acompanhamento regular da pressão e do colesterol faz toda a diferença.",
		ageSenior:          "Acima dos 60, priorize atividades de baixo impacto e mantenha suas consultas em dia.",
		weight:             "Seu peso atual é %.0f kg e seu IMC é %.1f. %s",
		weightAdvice:       map[string]string{"underweight": "Você está abaixo do peso ideal; converse com seu médico sobre ganhar massa de forma saudável.", "normal": "Seu peso está na faixa saudável, continue assim!", "overweight": "Um pequeno déficit calórico e caminhadas regulares ajudam a voltar à faixa ideal.", "obese": "Vale conversar com seu médico sobre um plano de perda de peso gradual e seguro."},
		medicationsNone:    "Você ainda não cadastrou nenhum medicamento. Adicione-os na aba de medicamentos para eu acompanhar com você.",
		medications:        "Você está acompanhando %d medicamento(s): %s. Tomar nos horários certos é essencial para o controle da sua condição.",
		exerciseGeneral:    "Exercícios leves e regulares fortalecem seu coração. Comece com caminhadas de 20 minutos e evolua aos poucos.",
		exerciseOverweight: "Prefira exercícios de baixo impacto como caminhada, natação e bicicleta. Eles protegem as articulações enquanto fortalecem o coração.",
		diet:               "Sua necessidade diária estimada é de %d calorias, divididas em 5-6 refeições menores. %s",
		heart:              "Para a saúde do coração: monitore sua pressão regularmente, reduza o sal, durma bem e mantenha seus medicamentos em dia.",
		motivation:         "Consistência vale mais que intensidade. Pequenos passos diários levam a grandes resultados, continue firme!",
		question:           "Boa pergunta! Posso te ajudar com medicamentos, exercícios, alimentação e saúde do coração. Sobre qual desses você quer conversar?",
		acknowledgment:     "Entendi! Estou aqui para ajudar com medicamentos, exercícios, alimentação e saúde do coração.",
		summarySuffix:      " Com base no seu perfil (%d anos, %.0f kg), posso dar orientações personalizadas.",
	},
	i18n.English: {
		profileRequired:    "To help you better, please complete your profile first with age, weight, and height.",
		age:                "You are %d years old. %s",
		ageYoung:           "At this stage, regular exercise and good nutrition build a solid foundation for your heart.",
		ageMiddle:          "From 40 on, regular monitoring of blood pressure and cholesterol makes all the difference.",
		ageSenior:          "Above 60, prioritize low-impact activities and keep up with your checkups.",
		weight:             "Your current weight is %.0f kg and your BMI is %.1f. %s",
		weightAdvice:       map[string]string{"underweight": "You are below the ideal range; talk to your doctor about gaining weight in a healthy way.", "normal": "Your weight is in the healthy range, keep it up!", "overweight": "A small calorie deficit and regular walks help you get back to the ideal range.", "obese": "It is worth discussing a gradual, safe weight-loss plan with your doctor."},
		medicationsNone:    "You have not registered any medications yet. Add them in the medications tab so I can track them with you.",
		medications:        "You are tracking %d medication(s): %s. Taking them at the right times is essential for managing your condition.",
		exerciseGeneral:    "Light, regular exercise strengthens your heart. Start with 20-minute walks and build up gradually.",
		exerciseOverweight: "Prefer low-impact exercises like walking, swimming, and cycling. They protect your joints while strengthening your heart.",
		diet:               "Your estimated daily need is %d calories, split across 5-6 smaller meals. %s",
		heart:              "For heart health: monitor your blood pressure regularly, cut back on salt, sleep well, and stay on top of your medications.",
		motivation:         "Consistency beats intensity. Small daily steps lead to great results, keep going!",
		question:           "Great question! I can help with medications, exercise, nutrition, and heart health. Which of those would you like to talk about?",
		acknowledgment:     "Got it! I am here to help with medications, exercise, nutrition, and heart health.",
		summarySuffix:      " Based on your profile (%d years, %.0f kg), I can give personalized guidance.",
	},
	i18n.Dutch: {
		profileRequired:    "Om u beter te helpen, vul eerst uw profiel in met leeftijd, gewicht en lengte.",
		age:                "U bent %d jaar oud. %s",
		ageYoung:           "In deze fase vormen regelmatige beweging en goede voeding een stevige basis voor uw hart.",
		ageMiddle:          "Vanaf 40 maakt regelmatige controle van bloeddruk en cholesterol het verschil.",
		ageSenior:          "Boven de 60 geeft u prioriteit aan activiteiten met lage impact en houdt u uw controles bij.",
		weight:             "Uw huidige gewicht is %.0f kg en uw BMI is %.1f. %s",
		weightAdvice:       map[string]string{"underweight": "U zit onder het ideale bereik; bespreek met uw arts hoe u op een gezonde manier kunt aankomen.", "normal": "Uw gewicht ligt in het gezonde bereik, ga zo door!", "overweight": "Een klein calorietekort en regelmatige wandelingen helpen u terug naar het ideale bereik.", "obese": "Het is de moeite waard om met uw arts een geleidelijk, veilig afvalplan te bespreken."},
		medicationsNone:    "U heeft nog geen medicijnen geregistreerd. Voeg ze toe in het medicijnentabblad zodat ik ze met u kan volgen.",
		medications:        "U volgt %d medicijn(en): %s. Ze op de juiste tijden innemen is essentieel voor het beheersen van uw aandoening.",
		exerciseGeneral:    "Lichte, regelmatige beweging versterkt uw hart. Begin met wandelingen van 20 minuten en bouw geleidelijk op.",
		exerciseOverweight: "Kies oefeningen met lage impact zoals wandelen, zwemmen en fietsen. Ze beschermen uw gewrichten terwijl ze uw hart versterken.",
		diet:               "Uw geschatte dagelijkse behoefte is %d calorieën, verdeeld over 5-6 kleinere maaltijden. %s",
		heart:              "Voor hartgezondheid: controleer regelmatig uw bloeddruk, verminder zout, slaap goed en neem uw medicijnen trouw in.",
		motivation:         "Consistentie wint van intensiteit. Kleine dagelijkse stappen leiden tot grote resultaten, houd vol!",
		question:           "Goede vraag! Ik kan helpen met medicijnen, beweging, voeding en hartgezondheid. Waarover wilt u praten?",
		acknowledgment:     "Begrepen! Ik ben er om te helpen met medicijnen, beweging, voeding en hartgezondheid.",
		summarySuffix:      " Op basis van uw profiel (%d jaar, %.0f kg) kan ik persoonlijk advies geven.",
	},
	i18n.French: {
		profileRequired:    "Pour mieux vous aider, complétez d'abord votre profil avec votre âge, votre poids et votre taille.",
		age:                "Vous avez %d ans. %s",
		ageYoung:           "À ce stade, l'exercice régulier et une bonne alimentation construisent une base solide pour votre cœur.",
		ageMiddle:          "À partir de 40 ans, un suivi régulier de la tension et du cholestérol fait toute la différence.",
		ageSenior:          "Au-delà de 60 ans, privilégiez les activités à faible impact et gardez vos rendez-vous médicaux à jour.",
		weight:             "Votre poids actuel est de %.0f kg et votre IMC est de %.1f. %s",
		weightAdvice:       map[string]string{"underweight": "Vous êtes en dessous de la plage idéale ; parlez à votre médecin d'une prise de poids saine.", "normal": "Votre poids est dans la plage saine, continuez ainsi !", "overweight": "Un léger déficit calorique et des marches régulières vous aident à revenir dans la plage idéale.", "obese": "Il vaut la peine de discuter avec votre médecin d'un plan de perte de poids progressif et sûr."},
		medicationsNone:    "Vous n'avez pas encore enregistré de médicaments. Ajoutez-les dans l'onglet médicaments pour que je puisse les suivre avec vous.",
		medications:        "Vous suivez %d médicament(s) : %s. Les prendre aux bons moments est essentiel pour gérer votre condition.",
		exerciseGeneral:    "L'exercice léger et régulier renforce votre cœur. Commencez par des marches de 20 minutes et progressez graduellement.",
		exerciseOverweight: "Préférez les exercices à faible impact comme la marche, la natation et le vélo. Ils protègent vos articulations tout en renforçant votre cœur.",
		diet:               "Votre besoin quotidien estimé est de %d calories, réparties en 5-6 repas plus petits. %s",
		heart:              "Pour la santé cardiaque : surveillez régulièrement votre tension, réduisez le sel, dormez bien et respectez vos médicaments.",
		motivation:         "La régularité compte plus que l'intensité. De petits pas quotidiens mènent à de grands résultats, continuez !",
		question:           "Bonne question ! Je peux vous aider avec les médicaments, l'exercice, la nutrition et la santé cardiaque. De quoi voulez-vous parler ?",
		acknowledgment:     "Compris ! Je suis là pour vous aider avec les médicaments, l'exercice, la nutrition et la santé cardiaque.",
		summarySuffix:      " D'après votre profil (%d ans, %.0f kg), je peux donner des conseils personnalisés.",
	},
	i18n.German: {
		profileRequired:    "Um Ihnen besser zu helfen, vervollständigen Sie bitte zuerst Ihr Profil mit Alter, Gewicht und Größe.",
		age:                "Sie sind %d Jahre alt. %s",
		ageYoung:           "In dieser Phase bilden regelmäßige Bewegung und gute Ernährung eine solide Grundlage für Ihr Herz.",
		ageMiddle:          "Ab 40 macht die regelmäßige Kontrolle von Blutdruck und Cholesterin den Unterschied.",
		ageSenior:          "Über 60 sollten Sie Aktivitäten mit geringer Belastung bevorzugen und Ihre Kontrolltermine einhalten.",
		weight:             "Ihr aktuelles Gewicht beträgt %.0f kg und Ihr BMI ist %.1f. %s",
		weightAdvice:       map[string]string{"underweight": "Sie liegen unter dem Idealbereich; sprechen Sie mit Ihrem Arzt über eine gesunde Gewichtszunahme.", "normal": "Ihr Gewicht liegt im gesunden Bereich, weiter so!", "overweight": "Ein kleines Kaloriendefizit und regelmäßige Spaziergänge helfen Ihnen zurück in den Idealbereich.", "obese": "Es lohnt sich, mit Ihrem Arzt einen schrittweisen, sicheren Abnehmplan zu besprechen."},
		medicationsNone:    "Sie haben noch keine Medikamente registriert. Fügen Sie sie im Medikamenten-Tab hinzu, damit ich sie mit Ihnen verfolgen kann.",
		medications:        "Sie verfolgen %d Medikament(e): %s. Die Einnahme zu den richtigen Zeiten ist entscheidend für die Kontrolle Ihrer Erkrankung.",
		exerciseGeneral:    "Leichte, regelmäßige Bewegung stärkt Ihr Herz. Beginnen Sie mit 20-minütigen Spaziergängen und steigern Sie sich allmählich.",
		exerciseOverweight: "Bevorzugen Sie gelenkschonende Übungen wie Gehen, Schwimmen und Radfahren. Sie schützen Ihre Gelenke und stärken zugleich Ihr Herz.",
		diet:               "Ihr geschätzter Tagesbedarf liegt bei %d Kalorien, verteilt auf 5-6 kleinere Mahlzeiten. %s",
		heart:              "Für die Herzgesundheit: Kontrollieren Sie regelmäßig Ihren Blutdruck, reduzieren Sie Salz, schlafen Sie gut und nehmen Sie Ihre Medikamente zuverlässig ein.",
		motivation:         "Beständigkeit schlägt Intensität. Kleine tägliche Schritte führen zu großen Ergebnissen, bleiben Sie dran!",
		question:           "Gute Frage! Ich kann bei Medikamenten, Bewegung, Ernährung und Herzgesundheit helfen. Worüber möchten Sie sprechen?",
		acknowledgment:     "Verstanden! Ich bin hier, um bei Medikamenten, Bewegung, Ernährung und Herzgesundheit zu helfen.",
		summarySuffix:      " Basierend auf Ihrem Profil (%d Jahre, %.0f kg) kann ich persönliche Empfehlungen geben.",
	},
}
