package recommend

import "github.com/cardiovital/server/internal/i18n"

var exerciseNames = map[i18n.Language][6]string{
	i18n.Portuguese: {"Caminhada Leve", "Alongamento Completo", "Exercícios Respiratórios", "Bicicleta Ergométrica", "Natação Leve", "Yoga para Cardíacos"},
	i18n.English:    {"Light Walking", "Full Stretching", "Breathing Exercises", "Stationary Bike", "Light Swimming", "Yoga for Heart Health"},
	i18n.Dutch:      {"Lichte Wandeling", "Volledige Stretching", "Ademhalingsoefeningen", "Hometrainer", "Licht Zwemmen", "Yoga voor Hartgezondheid"},
	i18n.French:     {"Marche Légère", "Étirements Complets", "Exercices Respiratoires", "Vélo Stationnaire", "Natation Légère", "Yoga pour la Santé Cardiaque"},
	i18n.German:     {"Leichtes Gehen", "Vollständiges Dehnen", "Atemübungen", "Heimtrainer", "Leichtes Schwimmen", "Yoga für Herzgesundheit"},
}

var exerciseDescriptions = map[i18n.Language][6]string{
	i18n.Portuguese: {
		"Caminhada em ritmo confortável para aquecimento cardiovascular",
		"Série de alongamentos para melhorar flexibilidade e circulação",
		"Técnicas de respiração profunda para fortalecer o sistema cardiovascular",
		"Pedalada em ritmo moderado, excelente para o coração",
		"Natação suave, ideal para cardíacos (baixo impacto)",
		"Posturas adaptadas para fortalecer o coração sem esforço excessivo",
	},
	i18n.English: {
		"Walking at a comfortable pace for cardiovascular warm-up",
		"Series of stretches to improve flexibility and circulation",
		"Deep breathing techniques to strengthen the cardiovascular system",
		"Moderate-paced cycling, excellent for the heart",
		"Gentle swimming, ideal for heart patients (low impact)",
		"Adapted postures to strengthen the heart without excessive effort",
	},
	i18n.Dutch: {
		"Wandelen in een comfortabel tempo voor cardiovasculaire opwarming",
		"Reeks stretchoefeningen om flexibiliteit en circulatie te verbeteren",
		"Diepe ademhalingstechnieken om het cardiovasculaire systeem te versterken",
		"Fietsen in matig tempo, uitstekend voor het hart",
		"Zacht zwemmen, ideaal voor hartpatiënten (lage impact)",
		"Aangepaste houdingen om het hart te versterken zonder overmatige inspanning",
	},
	i18n.French: {
		"Marche à un rythme confortable pour l'échauffement cardiovasculaire",
		"Série d'étirements pour améliorer la flexibilité et la circulation",
		"Techniques de respiration profonde pour renforcer le système cardiovasculaire",
		"Cyclisme à rythme modéré, excellent pour le cœur",
		"Natation douce, idéale pour les patients cardiaques (faible impact)",
		"Postures adaptées pour renforcer le cœur sans effort excessif",
	},
	i18n.German: {
		"Gehen in einem komfortablen Tempo zur kardiovaskulären Aufwärmung",
		"Serie von Dehnübungen zur Verbesserung von Flexibilität und Durchblutung",
		"Tiefe Atemtechniken zur Stärkung des Herz-Kreislauf-Systems",
		"Radfahren in moderatem Tempo, ausgezeichnet für das Herz",
		"Sanftes Schwimmen, ideal für Herzpatienten (geringe Belastung)",
		"Angepasste Haltungen zur Stärkung des Herzens ohne übermäßige Anstrengung",
	},
}

var intensityLabels = map[i18n.Language][6]string{
	i18n.Portuguese: {"Baixa", "Muito Baixa", "Muito Baixa", "Moderada", "Baixa a Moderada", "Baixa"},
	i18n.English:    {"Low", "Very Low", "Very Low", "Moderate", "Low to Moderate", "Low"},
	i18n.Dutch:      {"Laag", "Zeer Laag", "Zeer Laag", "Matig", "Laag tot Matig", "Laag"},
	i18n.French:     {"Faible", "Très Faible", "Très Faible", "Modérée", "Faible à Modérée", "Faible"},
	i18n.German:     {"Niedrig", "Sehr Niedrig", "Sehr Niedrig", "Mäßig", "Niedrig bis Mäßig", "Niedrig"},
}

var statusLabels = map[i18n.Language]map[string]string{
	i18n.Portuguese: {"underweight": "Abaixo do peso", "normal": "Peso normal", "overweight": "Sobrepeso", "obese": "Obesidade"},
	i18n.English:    {"underweight": "Underweight", "normal": "Normal weight", "overweight": "Overweight", "obese": "Obesity"},
	i18n.Dutch:      {"underweight": "Ondergewicht", "normal": "Normaal gewicht", "overweight": "Overgewicht", "obese": "Obesitas"},
	i18n.French:     {"underweight": "Insuffisance pondérale", "normal": "Poids normal", "overweight": "Surpoids", "obese": "Obésité"},
	i18n.German:     {"underweight": "Untergewicht", "normal": "Normalgewicht", "overweight": "Übergewicht", "obese": "Fettleibigkeit"},
}

type tipRow struct {
	category string
	title    string
	message  string
	tip      string
}

var tipRows = map[i18n.Language][6]tipRow{
	i18n.Portuguese: {
		{"💊 Medicamentos", "Regularidade é Fundamental", "Tomar seus medicamentos nos horários corretos é essencial para o controle da sua condição cardíaca.", "Configure alarmes no celular para cada horário de medicação"},
		{"🏃 Exercícios", "Movimento é Vida", "Exercícios leves e regulares fortalecem seu coração e melhoram sua qualidade de vida.", "Comece com 10 minutos de caminhada por dia e aumente gradualmente"},
		{"🥗 Alimentação", "Nutrição Balanceada", "Uma dieta equilibrada ajuda a controlar pressão arterial e colesterol.", "Reduza sal e gorduras saturadas, aumente vegetais e frutas"},
		{"💧 Hidratação", "Água é Essencial", "Manter-se hidratado ajuda na circulação sanguínea e função cardíaca.", "Beba pelo menos 2 litros de água por dia"},
		{"😴 Sono", "Descanso Adequado", "Dormir bem é crucial para a recuperação e saúde do coração.", "Mantenha rotina de sono regular, 7-8 horas por noite"},
		{"🧘 Estresse", "Controle o Estresse", "Estresse elevado pode afetar negativamente sua saúde cardíaca.", "Pratique técnicas de relaxamento como meditação ou respiração profunda"},
	},
	i18n.English: {
		{"💊 Medications", "Regularity is Key", "Taking your medications at the correct times is essential for managing your heart condition.", "Set phone alarms for each medication time"},
		{"🏃 Exercise", "Movement is Life", "Light, regular exercise strengthens your heart and improves your quality of life.", "Start with 10 minutes of walking per day and gradually increase"},
		{"🥗 Nutrition", "Balanced Nutrition", "A balanced diet helps control blood pressure and cholesterol.", "Reduce salt and saturated fats, increase vegetables and fruits"},
		{"💧 Hydration", "Water is Essential", "Staying hydrated helps blood circulation and heart function.", "Drink at least 2 liters of water per day"},
		{"😴 Sleep", "Adequate Rest", "Good sleep is crucial for recovery and heart health.", "Maintain regular sleep routine, 7-8 hours per night"},
		{"🧘 Stress", "Control Stress", "High stress can negatively affect your heart health.", "Practice relaxation techniques like meditation or deep breathing"},
	},
	i18n.Dutch: {
		{"💊 Medicijnen", "Regelmaat is Essentieel", "Het innemen van uw medicijnen op de juiste tijden is essentieel voor het beheersen van uw hartaandoening.", "Stel telefoonalarmen in voor elke medicatietijd"},
		{"🏃 Oefening", "Beweging is Leven", "Lichte, regelmatige oefening versterkt uw hart en verbetert uw levenskwaliteit.", "Begin met 10 minuten wandelen per dag en verhoog geleidelijk"},
		{"🥗 Voeding", "Evenwichtige Voeding", "Een evenwichtig dieet helpt bloeddruk en cholesterol te beheersen.", "Verminder zout en verzadigde vetten, verhoog groenten en fruit"},
		{"💧 Hydratatie", "Water is Essentieel", "Gehydrateerd blijven helpt de bloedcirculatie en hartfunctie.", "Drink minstens 2 liter water per dag"},
		{"😴 Slaap", "Adequate Rust", "Goede slaap is cruciaal voor herstel en hartgezondheid.", "Handhaaf regelmatige slaaproutine, 7-8 uur per nacht"},
		{"🧘 Stress", "Beheers Stress", "Hoge stress kan uw hartgezondheid negatief beïnvloeden.", "Oefen ontspanningstechnieken zoals meditatie of diepe ademhaling"},
	},
	i18n.French: {
		{"💊 Médicaments", "La Régularité est Essentielle", "Prendre vos médicaments aux heures correctes est essentiel pour gérer votre condition cardiaque.", "Configurez des alarmes téléphoniques pour chaque heure de médication"},
		{"🏃 Exercice", "Le Mouvement c'est la Vie", "L'exercice léger et régulier renforce votre cœur et améliore votre qualité de vie.", "Commencez avec 10 minutes de marche par jour et augmentez progressivement"},
		{"🥗 Nutrition", "Nutrition Équilibrée", "Un régime équilibré aide à contrôler la pression artérielle et le cholestérol.", "Réduisez le sel et les graisses saturées, augmentez les légumes et les fruits"},
		{"💧 Hydratation", "L'Eau est Essentielle", "Rester hydraté aide à la circulation sanguine et à la fonction cardiaque.", "Buvez au moins 2 litres d'eau par jour"},
		{"😴 Sommeil", "Repos Adéquat", "Un bon sommeil est crucial pour la récupération et la santé cardiaque.", "Maintenez une routine de sommeil régulière, 7-8 heures par nuit"},
		{"🧘 Stress", "Contrôlez le Stress", "Un stress élevé peut affecter négativement votre santé cardiaque.", "Pratiquez des techniques de relaxation comme la méditation ou la respiration profonde"},
	},
	i18n.German: {
		{"💊 Medikamente", "Regelmäßigkeit ist Entscheidend", "Die Einnahme Ihrer Medikamente zu den richtigen Zeiten ist entscheidend für die Kontrolle Ihrer Herzerkrankung.", "Stellen Sie Telefonalarme für jede Medikationszeit ein"},
		{"🏃 Übung", "Bewegung ist Leben", "Leichte, regelmäßige Bewegung stärkt Ihr Herz und verbessert Ihre Lebensqualität.", "Beginnen Sie mit 10 Minuten Gehen pro Tag und steigern Sie allmählich"},
		{"🥗 Ernährung", "Ausgewogene Ernährung", "Eine ausgewogene Ernährung hilft, Blutdruck und Cholesterin zu kontrollieren.", "Reduzieren Sie Salz und gesättigte Fette, erhöhen Sie Gemüse und Obst"},
		{"💧 Hydratation", "Wasser ist Essentiell", "Hydratisiert zu bleiben hilft der Blutzirkulation und Herzfunktion.", "Trinken Sie mindestens 2 Liter Wasser pro Tag"},
		{"😴 Schlaf", "Angemessene Ruhe", "Guter Schlaf ist entscheidend für Erholung und Herzgesundheit.", "Halten Sie eine regelmäßige Schlafroutine ein, 7-8 Stunden pro Nacht"},
		{"🧘 Stress", "Stress Kontrollieren", "Hoher Stress kann Ihre Herzgesundheit negativ beeinflussen.", "Üben Sie Entspannungstechniken wie Meditation oder tiefes Atmen"},
	},
}
